package model

import (
	"fmt"
	"math"
	"sort"
)

// DefaultThreshold is the minimum classifier score for a candidate account
// to be considered in a prediction.
const DefaultThreshold = 0.4

// Score is a single classifier output: one account code and its raw score.
type Score struct {
	Code  AccountCode
	Value float64
}

// Scores is the classifier's full output, ordered by the model's label
// enumeration. The order is part of the contract: ranking ties are broken by
// it, so it must be stable across calls for the same loaded model.
type Scores []Score

// Prediction is one ranked classifier candidate. Confidence is rounded to
// three decimal places for display; ranking happens on the raw scores.
type Prediction struct {
	Code       AccountCode
	Confidence float64
}

// Validate ensures the Prediction has valid data.
func (p *Prediction) Validate() error {
	if err := p.Code.Validate(); err != nil {
		return err
	}

	if p.Confidence < 0.0 || p.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0, got %.2f", p.Confidence)
	}

	return nil
}

// Predictions is a ranked, filtered list of predictions, highest confidence
// first.
type Predictions []Prediction

// Top returns the highest-confidence prediction, or nil if empty.
func (p Predictions) Top() *Prediction {
	if len(p) == 0 {
		return nil
	}
	return &p[0]
}

// Codes returns the account codes in ranked order.
func (p Predictions) Codes() []AccountCode {
	codes := make([]AccountCode, len(p))
	for i, pred := range p {
		codes[i] = pred.Code
	}
	return codes
}

// Validate ensures all predictions in the list are valid and unique.
func (p Predictions) Validate() error {
	seen := make(map[AccountCode]bool)

	for i := range p {
		if err := p[i].Validate(); err != nil {
			return fmt.Errorf("invalid prediction at index %d: %w", i, err)
		}

		if seen[p[i].Code] {
			return fmt.Errorf("duplicate account code %q in predictions", string(p[i].Code))
		}
		seen[p[i].Code] = true
	}

	return nil
}

// Rank filters scores by the confidence threshold and orders them highest
// first. The sort is stable: equal scores keep the classifier's enumeration
// order, so identical input always yields identical output. Confidences in
// the result are rounded to three decimals; the ordering uses raw values.
func Rank(scores Scores, threshold float64) Predictions {
	kept := make(Scores, 0, len(scores))
	for _, s := range scores {
		if s.Value >= threshold {
			kept = append(kept, s)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Value > kept[j].Value
	})

	ranked := make(Predictions, len(kept))
	for i, s := range kept {
		ranked[i] = Prediction{
			Code:       s.Code,
			Confidence: roundConfidence(s.Value),
		}
	}
	return ranked
}

func roundConfidence(v float64) float64 {
	return math.Round(v*1000) / 1000
}
