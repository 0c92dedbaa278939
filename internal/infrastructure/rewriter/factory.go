package rewriter

import (
	"time"

	"github.com/glowpage/backend/internal/domain"
)

// Config selects and configures a rewriter implementation
type Config struct {
	Enabled           bool
	BaseURL           string
	Model             string
	Timeout           time.Duration
	RequestsPerMinute int
}

// New selects among the statically known rewriter implementations:
// the Ollama client when enabled, the identity rewriter otherwise.
func New(cfg Config) domain.Rewriter {
	if !cfg.Enabled {
		return Identity{}
	}
	return NewOllamaClient(cfg.BaseURL, cfg.Model, cfg.Timeout, cfg.RequestsPerMinute)
}
