package usecase

import (
	"context"
	"log"
	"time"

	"github.com/glowpage/backend/internal/domain"
)

// RewriteCoordinator orchestrates draft -> optional rewrite -> validate ->
// accept/fallback for each FAQ answer. Every failure path converges on the
// deterministic draft; FinalizeAnswers never errors outward.
type RewriteCoordinator struct {
	rewriter  domain.Rewriter // nil when rewriting is disabled
	validator *GroundingValidator
	timeout   time.Duration
}

// NewRewriteCoordinator creates a coordinator. A nil rewriter disables
// rewriting entirely; drafts then pass through verbatim.
func NewRewriteCoordinator(rewriter domain.Rewriter, validator *GroundingValidator, timeout time.Duration) *RewriteCoordinator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &RewriteCoordinator{
		rewriter:  rewriter,
		validator: validator,
		timeout:   timeout,
	}
}

// FinalizeAnswers resolves the final text for every draft, preserving the
// original question order. Rewriter absence, failure, timeout or a malformed
// batch all fall back to the drafts; per-item validation rejections fall
// back to that item's draft with the reason recorded as metadata.
func (c *RewriteCoordinator) FinalizeAnswers(ctx context.Context, drafts []domain.DraftAnswer, record domain.ProductRecord) []domain.FinalAnswer {
	if c.rewriter == nil || len(drafts) == 0 {
		return draftsVerbatim(drafts)
	}

	rewriteCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	candidates, err := c.rewriter.Rewrite(rewriteCtx, drafts, record.Context())
	if err != nil {
		log.Printf("[REWRITE] rewriter unavailable, keeping drafts: %v", err)
		return draftsVerbatim(drafts)
	}
	if len(candidates) != len(drafts) {
		log.Printf("[REWRITE] malformed batch: got %d candidates for %d drafts, keeping drafts",
			len(candidates), len(drafts))
		return draftsVerbatim(drafts)
	}

	finals := make([]domain.FinalAnswer, 0, len(drafts))
	for i, draft := range drafts {
		// A cancelled run stops consuming candidates but keeps every
		// already-finalized answer intact.
		if ctx.Err() != nil {
			finals = append(finals, finalFromDraft(draft))
			continue
		}

		verdict := c.validator.Validate(draft, candidates[i].Answer, record)
		final := domain.FinalAnswer{
			Question: draft.Question,
			Category: draft.Category,
			Answer:   verdict.FinalText,
		}
		if !verdict.Accepted {
			final.ValidationReason = verdict.Reason
			log.Printf("[REWRITE] candidate rejected (%s) for question %q", verdict.Reason, draft.Question)
		}
		finals = append(finals, final)
	}

	return finals
}

func draftsVerbatim(drafts []domain.DraftAnswer) []domain.FinalAnswer {
	finals := make([]domain.FinalAnswer, 0, len(drafts))
	for _, d := range drafts {
		finals = append(finals, finalFromDraft(d))
	}
	return finals
}

func finalFromDraft(d domain.DraftAnswer) domain.FinalAnswer {
	return domain.FinalAnswer{
		Question: d.Question,
		Category: d.Category,
		Answer:   d.Answer,
	}
}
