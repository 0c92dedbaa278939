package domain

import (
	"context"
	"time"
)

// Rewriter is the optional paraphrasing adapter. Implementations must only
// reword answer text; every candidate is still checked by the grounding
// validator before it replaces a draft.
type Rewriter interface {
	Rewrite(ctx context.Context, items []DraftAnswer, product ProductContext) ([]DraftAnswer, error)
}

// PageCache defines the interface for caching assembled product pages
type PageCache interface {
	Get(ctx context.Context, key string) (*ProductPage, error)
	Set(ctx context.Context, key string, page *ProductPage, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
