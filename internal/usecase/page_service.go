package usecase

import (
	"context"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/glowpage/backend/internal/domain"
)

// PageServiceConfig holds configuration for the page service
type PageServiceConfig struct {
	CacheTTL time.Duration
}

// PageService runs the full generation pipeline for one product record:
// questions -> deterministic drafts -> rewrite/validate -> comparison ->
// assembled page, with a cache in front. The comparison and rewrite paths
// share nothing but the immutable record.
type PageService struct {
	cache       domain.PageCache
	faq         *FAQService
	comparison  *ComparisonService
	coordinator *RewriteCoordinator
	cacheTTL    time.Duration
}

// NewPageService creates a page service with its dependencies
func NewPageService(
	cache domain.PageCache,
	comparison *ComparisonService,
	coordinator *RewriteCoordinator,
	config PageServiceConfig,
) *PageService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &PageService{
		cache:       cache,
		faq:         NewFAQService(),
		comparison:  comparison,
		coordinator: coordinator,
		cacheTTL:    cacheTTL,
	}
}

// GeneratePage assembles the product page for a record.
// Flow: check cache -> draft FAQ -> finalize answers -> compare -> cache.
func (s *PageService) GeneratePage(ctx context.Context, record domain.ProductRecord) (*domain.ProductPage, error) {
	if record.Name == "" {
		return nil, domain.ErrInvalidRequest
	}

	cacheKey := pageCacheKey(record)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			log.Printf("[PAGE] Cache hit: product=%s", record.ID)
			return cached, nil
		}
	}

	questions := s.faq.Questions(record)
	drafts := s.faq.DraftAnswers(record, questions)
	finals := s.coordinator.FinalizeAnswers(ctx, drafts, record)
	comparison := s.comparison.Compare(record)

	page := &domain.ProductPage{
		RunID:       uuid.NewString(),
		ProductID:   record.ID,
		Title:       record.Name,
		Price:       record.Price,
		HeroBlurb:   heroBlurb(record),
		FAQ:         finals,
		Comparison:  comparison,
		GeneratedAt: time.Now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, page, s.cacheTTL); err != nil {
			log.Printf("[PAGE] Cache write failed: %v", err)
		}
	}

	return page, nil
}

// heroBlurb builds the page header line from the record's benefits
func heroBlurb(record domain.ProductRecord) string {
	if len(record.Benefits) == 0 {
		return ""
	}
	return record.Name + ": " + strings.Join(record.Benefits, ", ")
}

// pageCacheKey builds a normalized cache key from the record identity.
// Format: "page:{id}:{price}" so a price change invalidates the entry.
func pageCacheKey(record domain.ProductRecord) string {
	return "page:" + record.ID + ":" + strconv.Itoa(record.Price)
}
