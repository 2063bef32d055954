package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/asentar-dev/asentar/internal/model"
)

// MockClassifier is a test implementation of the Classifier interface.
// It returns deterministic scores based on keywords in the description.
type MockClassifier struct {
	// Err, when set, is returned by every call.
	Err   error
	calls []string
	mu    sync.Mutex
}

// NewMockClassifier creates a new mock classifier.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{
		calls: make([]string, 0),
	}
}

// Scores provides deterministic account scores based on description keywords.
func (m *MockClassifier) Scores(_ context.Context, text string) (model.Scores, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, text)

	if m.Err != nil {
		return nil, m.Err
	}

	lower := strings.ToLower(text)

	switch {
	case strings.Contains(lower, "sueldo") || strings.Contains(lower, "salario"):
		// Wage payment: expense against the bank account.
		return model.Scores{
			{Code: "51101", Value: 0.91},
			{Code: "11102", Value: 0.72},
			{Code: "21101", Value: 0.12},
		}, nil
	case strings.Contains(lower, "aporte"):
		// Capital contribution.
		return model.Scores{
			{Code: "11102", Value: 0.83},
			{Code: "31101", Value: 0.61},
			{Code: "41101", Value: 0.09},
		}, nil
	case strings.Contains(lower, "venta"):
		// Sale on the bank account.
		return model.Scores{
			{Code: "11102", Value: 0.79},
			{Code: "41101", Value: 0.74},
			{Code: "51101", Value: 0.05},
		}, nil
	case strings.Contains(lower, "proveedor") || strings.Contains(lower, "credito") || strings.Contains(lower, "crédito"):
		// Credit purchase.
		return model.Scores{
			{Code: "51101", Value: 0.68},
			{Code: "21101", Value: 0.55},
			{Code: "11102", Value: 0.21},
		}, nil
	case strings.Contains(lower, "alquiler"):
		// Rent payment.
		return model.Scores{
			{Code: "52101", Value: 0.88},
			{Code: "11102", Value: 0.66},
			{Code: "31101", Value: 0.03},
		}, nil
	default:
		// Nothing confident.
		return model.Scores{
			{Code: "11102", Value: 0.45},
			{Code: "51101", Value: 0.22},
			{Code: "21101", Value: 0.18},
		}, nil
	}
}

// Calls returns the descriptions this mock has classified.
func (m *MockClassifier) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	calls := make([]string, len(m.calls))
	copy(calls, m.calls)
	return calls
}
