package classifier

import (
	"fmt"
	"strings"
)

// NewClient creates a model client based on the provided configuration.
// The naive-Bayes backend is the default.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", "bayes":
		return newBayesClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", cfg.Provider)
	}
}
