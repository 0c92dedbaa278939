package usecase

import (
	"fmt"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// generatedNote labels the peer so downstream consumers never mistake it for
// a real SKU
const generatedNote = "Product B was deterministically generated for comparison (not a real SKU)."

// ComparisonService composes peer generation, overlap scoring and the
// recommendation engine into one comparison result. It holds no mutable
// state; Compare is safe to call concurrently across product runs.
type ComparisonService struct {
	generator *PeerGenerator
	scorer    *OverlapScorer
	engine    *RecommendationEngine
}

// NewComparisonService creates the assembler with its three stages
func NewComparisonService(config RecommendationConfig) *ComparisonService {
	return &ComparisonService{
		generator: NewPeerGenerator(),
		scorer:    NewOverlapScorer(),
		engine:    NewRecommendationEngine(config),
	}
}

// Compare runs the full comparison path for one record:
// generate peer -> score -> recommend -> summarize.
func (s *ComparisonService) Compare(record domain.ProductRecord) domain.ComparisonResult {
	peer := s.generator.Generate(record)
	metrics := s.scorer.Score(record, peer)
	prosA, prosB := s.scorer.ProsCons(record, peer, metrics)
	recommendation := s.engine.Recommend(metrics)

	return domain.ComparisonResult{
		PeerProduct:    peer,
		Metrics:        metrics,
		ProductA:       prosA,
		ProductB:       prosB,
		Recommendation: recommendation,
		Summary:        buildSummary(record, peer, metrics),
		GeneratedNote:  generatedNote,
	}
}

// buildSummary produces the human-readable comparison sentence
func buildSummary(a domain.ProductRecord, b domain.PeerProduct, m domain.ComparisonMetrics) string {
	nameA := a.Name
	if nameA == "" {
		nameA = "Product A"
	}

	parts := []string{fmt.Sprintf("Comparing %s and %s.", nameA, b.Name)}

	if len(m.SharedIngredients) > 0 {
		parts = append(parts, fmt.Sprintf("Both share ingredients: %s.", strings.Join(m.SharedIngredients, ", ")))
	}
	if len(m.UniqueToA) > 0 {
		parts = append(parts, fmt.Sprintf("Unique to A: %s.", strings.Join(m.UniqueToA, ", ")))
	}
	if len(m.UniqueToB) > 0 {
		parts = append(parts, fmt.Sprintf("Unique to B: %s.", strings.Join(m.UniqueToB, ", ")))
	}
	if a.HasPrice() && b.HasPrice() {
		parts = append(parts, fmt.Sprintf("Price difference: %d (%.2f%%, %s).",
			m.PriceDifference.Absolute, m.PriceDifference.Percent, priceSignLabel(m.PriceDifference.Sign)))
	}

	return strings.Join(parts, " ")
}

func priceSignLabel(sign domain.PriceSign) string {
	switch sign {
	case domain.PriceACheaper:
		return "A cheaper"
	case domain.PriceBCheaper:
		return "B cheaper"
	default:
		return "equal"
	}
}
