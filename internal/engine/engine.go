// Package engine implements the prediction orchestrator that turns a
// journal-entry description into a suggested debit/credit pair with amount.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/asentar-dev/asentar/internal/extract"
	"github.com/asentar-dev/asentar/internal/model"
	"github.com/asentar-dev/asentar/internal/pairing"
)

// NoConfidentPairMessage is reported when fewer than two candidates clear
// the confidence threshold.
const NoConfidentPairMessage = "no confident pair found"

// missingAmountWarning is attached to successful predictions whose
// description contained no parseable amount.
const missingAmountWarning = "no amount was detected in the description; the entry was pre-filled with 0.00"

// PredictionEngine orchestrates classification, ranking, double-entry
// pairing, and amount extraction for one description.
type PredictionEngine struct {
	classifier Classifier
	threshold  float64
}

// Config holds configuration options for the prediction engine.
type Config struct {
	Threshold float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Threshold: model.DefaultThreshold,
	}
}

// New creates a new prediction engine with the given classifier.
func New(classifier Classifier) *PredictionEngine {
	return NewWithConfig(classifier, DefaultConfig())
}

// NewWithConfig creates a new prediction engine with custom configuration.
func NewWithConfig(classifier Classifier, config Config) *PredictionEngine {
	if config.Threshold <= 0 {
		config.Threshold = model.DefaultThreshold
	}
	return &PredictionEngine{
		classifier: classifier,
		threshold:  config.Threshold,
	}
}

// Predict runs the full cycle for one description. A classifier failure
// (including an unavailable model) is returned as an error for the host to
// report as internal; too few confident candidates is a structured failure
// result, not an error. Nothing here is allowed to take the process down:
// panics are converted to a generic internal error at this boundary.
func (e *PredictionEngine) Predict(ctx context.Context, text string) (result *model.PredictionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("prediction panicked", "panic", r)
			result = nil
			err = fmt.Errorf("internal prediction failure: %v", r)
		}
	}()

	scores, err := e.classifier.Scores(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to classify description: %w", err)
	}

	ranked := model.Rank(scores, e.threshold)

	entry, ok := pairing.Pair(ranked)
	if !ok {
		slog.Info("no confident account pair",
			"qualifying_predictions", len(ranked),
			"threshold", e.threshold)

		return &model.PredictionResult{
			Success:        false,
			Error:          NoConfidentPairMessage,
			RawPredictions: ranked,
		}, nil
	}

	extracted := extract.Amount(text)

	result = &model.PredictionResult{
		Success:    true,
		Debit:      entry.Debit,
		Credit:     entry.Credit,
		Currency:   extracted.Currency,
		Confidence: ranked.Top().Confidence,
	}

	if extracted.Amount != nil {
		result.Amount = *extracted.Amount
	} else {
		result.Amount = decimal.Zero
		result.Warning = missingAmountWarning
	}

	slog.Info("journal entry predicted",
		"debit", string(result.Debit),
		"credit", string(result.Credit),
		"confidence", result.Confidence,
		"amount", result.Amount.StringFixed(2),
		"currency", result.Currency)

	return result, nil
}
