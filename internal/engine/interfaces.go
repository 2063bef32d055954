package engine

import (
	"context"

	"github.com/asentar-dev/asentar/internal/model"
)

// Classifier defines the contract for scoring a description against the
// chart of accounts.
type Classifier interface {
	Scores(ctx context.Context, text string) (model.Scores, error)
}
