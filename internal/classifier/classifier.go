package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asentar-dev/asentar/internal/common"
	"github.com/asentar-dev/asentar/internal/model"
	"github.com/asentar-dev/asentar/internal/service"
)

// Classifier implements the engine.Classifier interface on top of a model
// Client, adding caching, retry, and structured logging.
type Classifier struct {
	client    Client
	cache     *scoreCache
	logger    *slog.Logger
	retryOpts service.RetryOptions
}

// Config holds configuration for the classifier.
type Config struct {
	Provider   string
	ModelPath  string
	MaxRetries int
	RetryDelay time.Duration
	CacheTTL   time.Duration
}

// NewClassifier creates a new classifier for the configured model backend.
// Construction never touches the model resource; loading is deferred to the
// first call (or to Warm), so the hosting process can start without it.
func NewClassifier(cfg Config, logger *slog.Logger) (*Classifier, error) {
	client, err := NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  cfg.MaxRetries,
		InitialDelay: cfg.RetryDelay,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
	}

	if retryOpts.MaxAttempts == 0 {
		retryOpts.MaxAttempts = 2
	}
	if retryOpts.InitialDelay == 0 {
		retryOpts.InitialDelay = 100 * time.Millisecond
	}

	return &Classifier{
		client:    client,
		cache:     newScoreCache(cfg.CacheTTL),
		logger:    logger,
		retryOpts: retryOpts,
	}, nil
}

// Warm eagerly loads the model if the backend supports it. A failure here is
// not fatal to the host: prediction calls keep retrying the load until the
// model resource becomes available.
func (c *Classifier) Warm(ctx context.Context) error {
	w, ok := c.client.(warmer)
	if !ok {
		return nil
	}

	if err := w.warm(ctx); err != nil {
		return err
	}

	c.logger.Info("classification model loaded")
	return nil
}

// Scores classifies the description, returning a score for every account
// code the loaded model knows.
func (c *Classifier) Scores(ctx context.Context, text string) (model.Scores, error) {
	if scores, found := c.cache.get(text); found {
		c.logger.Debug("cache hit for description", "length", len(text))
		return scores, nil
	}

	var scores model.Scores

	err := common.WithRetry(ctx, func() error {
		result, classifyErr := c.client.Classify(ctx, text)
		if classifyErr != nil {
			c.logger.Warn("classification attempt failed", "error", classifyErr)
			return &common.RetryableError{Err: classifyErr, Retryable: common.IsRetryable(classifyErr)}
		}
		scores = result
		return nil
	}, c.retryOpts)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrClassificationFailed, err)
	}

	c.cache.set(text, scores)

	c.logger.Debug("description classified",
		"label_count", len(scores))

	return scores, nil
}

// Close releases background resources.
func (c *Classifier) Close() error {
	if c.cache != nil {
		c.cache.Close()
	}
	return nil
}
