package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asentar-dev/asentar/internal/engine"
	"github.com/asentar-dev/asentar/internal/model"
)

func TestRenderResult_Success(t *testing.T) {
	out := renderResult(&model.PredictionResult{
		Success:    true,
		Debit:      "51101",
		Credit:     "11102",
		Amount:     decimal.RequireFromString("1500.50"),
		Currency:   "Bs",
		Confidence: 0.91,
	})

	assert.Contains(t, out, "Suggested journal entry")
	assert.Contains(t, out, "51101")
	assert.Contains(t, out, "11102")
	assert.Contains(t, out, "1500.50")
	assert.Contains(t, out, "Bs")
	assert.Contains(t, out, "0.910")
}

func TestRenderResult_SuccessWithWarning(t *testing.T) {
	out := renderResult(&model.PredictionResult{
		Success:    true,
		Debit:      "51101",
		Credit:     "11102",
		Amount:     decimal.Zero,
		Currency:   model.DefaultCurrency,
		Confidence: 0.91,
		Warning:    "no amount was detected in the description; the entry was pre-filled with 0.00",
	})

	assert.Contains(t, out, "0.00")
	assert.Contains(t, out, "no amount was detected")
}

func TestRenderResult_Failure(t *testing.T) {
	out := renderResult(&model.PredictionResult{
		Success: false,
		Error:   engine.NoConfidentPairMessage,
		RawPredictions: model.Predictions{
			{Code: "11102", Confidence: 0.45},
		},
	})

	assert.Contains(t, out, engine.NoConfidentPairMessage)
	assert.Contains(t, out, "11102")
	assert.Contains(t, out, "0.450")
}

func TestPredictCmd_Flags(t *testing.T) {
	cmd := predictCmd()

	modelFlag := cmd.Flags().Lookup("model")
	require.NotNil(t, modelFlag)

	thresholdFlag := cmd.Flags().Lookup("threshold")
	require.NotNil(t, thresholdFlag)
	assert.Equal(t, "0.4", thresholdFlag.DefValue)
}
