package rewriter

import (
	"context"

	"github.com/glowpage/backend/internal/domain"
)

// Identity is the no-op rewriter used when rewriting is disabled. It returns
// the drafts unchanged, so every answer trivially passes validation.
type Identity struct{}

// Rewrite returns a copy of the items with untouched answers.
func (Identity) Rewrite(_ context.Context, items []domain.DraftAnswer, _ domain.ProductContext) ([]domain.DraftAnswer, error) {
	out := make([]domain.DraftAnswer, len(items))
	copy(out, items)
	return out, nil
}
