package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when the description names no currency.
const DefaultCurrency = "BOB"

// ExtractedAmount holds the monetary details recovered from a description.
// Amount is nil when no parseable number was found. Date is the calendar
// date at extraction time; it is never parsed from the text.
type ExtractedAmount struct {
	Amount   *decimal.Decimal
	Currency string
	Date     time.Time
}

// Entry is a predicted debit/credit account pair for a journal entry.
type Entry struct {
	Debit  AccountCode
	Credit AccountCode
}

// PredictionResult is the orchestrator's response for one description.
// On success the debit/credit pair, amount, currency and top confidence are
// set, with Warning populated when the amount had to default to zero. On
// failure Error is set and RawPredictions carries whatever cleared the
// threshold, for caller diagnostics.
type PredictionResult struct {
	Success        bool
	Debit          AccountCode
	Credit         AccountCode
	Amount         decimal.Decimal
	Currency       string
	Confidence     float64
	Warning        string
	Error          string
	RawPredictions Predictions
}
