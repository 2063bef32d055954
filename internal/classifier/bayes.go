package classifier

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jbrukh/bayesian"

	"github.com/asentar-dev/asentar/internal/common"
	"github.com/asentar-dev/asentar/internal/model"
)

// bayesClient scores text with a gob-serialized naive-Bayes model whose
// classes are account codes. The model is loaded once per process, on first
// use; all later calls share the loaded instance.
type bayesClient struct {
	cl   *bayesian.Classifier
	path string
	mu   sync.Mutex
}

func newBayesClient(cfg Config) (Client, error) {
	if cfg.ModelPath == "" {
		return nil, fmt.Errorf("%w: model path is required", common.ErrInvalidConfig)
	}

	return &bayesClient{path: cfg.ModelPath}, nil
}

// load returns the loaded model, reading it from disk on first use.
// Concurrent first callers serialize on the mutex, so the file is read at
// most once. A failed load is not sticky: the next call tries again, which
// lets a deployment drop the model file in place without a restart.
func (b *bayesClient) load() (*bayesian.Classifier, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cl != nil {
		return b.cl, nil
	}

	cl, err := bayesian.NewClassifierFromFile(b.path)
	if err != nil {
		return nil, fmt.Errorf("%w: loading %s: %v", common.ErrModelUnavailable, b.path, err)
	}

	b.cl = cl
	return cl, nil
}

func (b *bayesClient) warm(_ context.Context) error {
	_, err := b.load()
	return err
}

// Classify scores the text against every account code the model was trained
// with. Scores are posterior probabilities in [0,1]; their order follows the
// model's class enumeration, which is fixed for a loaded model.
func (b *bayesClient) Classify(ctx context.Context, text string) (model.Scores, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cl, err := b.load()
	if err != nil {
		return nil, err
	}

	probs, _, _ := cl.ProbScores(tokenize(text))

	scores := make(model.Scores, len(cl.Classes))
	for i, class := range cl.Classes {
		scores[i] = model.Score{
			Code:  model.AccountCode(class),
			Value: probs[i],
		}
	}

	return scores, nil
}

// tokenize lowercases the description and splits it on whitespace, matching
// how the model's training documents are tokenized.
func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
