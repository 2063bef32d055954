package classifier

import (
	"context"

	"github.com/asentar-dev/asentar/internal/model"
)

// Client defines the interface for classification model backends.
// Classify scores the text against every account code the loaded model
// knows, in the model's stable label-enumeration order.
type Client interface {
	Classify(ctx context.Context, text string) (model.Scores, error)
}

// warmer is implemented by clients whose model can be loaded eagerly at
// startup rather than on the first classification call.
type warmer interface {
	warm(ctx context.Context) error
}
