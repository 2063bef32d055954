// Package extract recovers monetary details from free-text journal-entry
// descriptions.
package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/asentar-dev/asentar/internal/model"
)

// amountPattern captures the first run of digits, dots and commas in the
// text, optionally followed by a currency marker. The leftmost run wins even
// when it is not the actual amount (an invoice number, say); that is the
// observed upstream behavior and callers get a warning when parsing fails.
var amountPattern = regexp.MustCompile(`(?i)([\d.,]+)(?:\s*(Bs|BOB|USD|\$))?`)

// Amount scans the description for a monetary amount and currency.
// Numbers are read in a locale where `.` groups thousands and `,` marks the
// decimal point: "1.500,50" parses as 1500.50. A malformed number degrades
// to an absent amount, never an error. The currency defaults to BOB and the
// date is always the calendar date at call time.
func Amount(text string) model.ExtractedAmount {
	result := model.ExtractedAmount{
		Currency: model.DefaultCurrency,
		Date:     today(),
	}

	m := amountPattern.FindStringSubmatch(text)
	if m == nil {
		return result
	}

	// Strip thousands separators, then promote the comma to decimal point.
	cleaned := strings.ReplaceAll(m[1], ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if amount, err := decimal.NewFromString(cleaned); err == nil {
		result.Amount = &amount
	}

	if m[2] != "" {
		result.Currency = m[2]
	}

	return result
}

func today() time.Time {
	year, month, day := time.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
