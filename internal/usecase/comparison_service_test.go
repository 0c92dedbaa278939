package usecase

import (
	"reflect"
	"strings"
	"testing"

	"github.com/glowpage/backend/internal/domain"
)

func TestCompare_FullPipeline(t *testing.T) {
	svc := NewComparisonService(RecommendationConfig{})
	record := sampleRecord()

	result := svc.Compare(record)

	if result.PeerProduct.GeneratedFrom != record.ID {
		t.Errorf("peer GeneratedFrom = %q, want %q", result.PeerProduct.GeneratedFrom, record.ID)
	}
	if result.GeneratedNote == "" || !strings.Contains(result.GeneratedNote, "not a real SKU") {
		t.Errorf("GeneratedNote = %q, want synthetic-peer disclosure", result.GeneratedNote)
	}
	if result.Metrics.OverlapScore <= 0 || result.Metrics.OverlapScore > 1 {
		t.Errorf("OverlapScore = %v, want in (0,1] for seeded peer", result.Metrics.OverlapScore)
	}
	if len(result.Metrics.SharedIngredients) == 0 {
		t.Error("SharedIngredients empty, peer seeding should guarantee at least one")
	}
	if len(result.Metrics.SharedBenefits) == 0 {
		t.Error("SharedBenefits empty, peer seeding should guarantee at least one")
	}
	if result.Recommendation.Decision == "" {
		t.Error("Recommendation.Decision empty, engine must be total")
	}
	if len(result.ProductA.Pros)+len(result.ProductA.Cons) == 0 {
		t.Error("ProductA pros/cons both empty")
	}
}

func TestCompare_Deterministic(t *testing.T) {
	svc := NewComparisonService(RecommendationConfig{})
	record := sampleRecord()

	first := svc.Compare(record)
	second := svc.Compare(record)

	if !reflect.DeepEqual(first, second) {
		t.Error("Compare() not deterministic for identical input")
	}

	// Independent service instances must agree too
	third := NewComparisonService(RecommendationConfig{}).Compare(record)
	if !reflect.DeepEqual(first, third) {
		t.Error("Compare() differs across service instances")
	}
}

func TestCompare_SummaryContent(t *testing.T) {
	svc := NewComparisonService(RecommendationConfig{})
	record := sampleRecord()

	result := svc.Compare(record)

	if !strings.Contains(result.Summary, record.Name) {
		t.Errorf("Summary %q does not name product A", result.Summary)
	}
	if !strings.Contains(result.Summary, result.PeerProduct.Name) {
		t.Errorf("Summary %q does not name the peer", result.Summary)
	}
	if !strings.Contains(result.Summary, "Price difference:") {
		t.Errorf("Summary %q missing price sentence for a priced pair", result.Summary)
	}
}

func TestCompare_UnpricedRecord(t *testing.T) {
	svc := NewComparisonService(RecommendationConfig{})
	record := sampleRecord()
	record.Price = 0

	result := svc.Compare(record)

	if result.PeerProduct.Price != 0 {
		t.Errorf("peer price = %d, want 0 for unpriced record", result.PeerProduct.Price)
	}
	if result.Metrics.PriceDifference.Sign != domain.PriceEqual {
		t.Errorf("price sign = %s, want equal when prices are absent", result.Metrics.PriceDifference.Sign)
	}
	if strings.Contains(result.Summary, "Price difference:") {
		t.Errorf("Summary %q mentions price difference for unpriced pair", result.Summary)
	}
}

func TestCompare_SparseRecord(t *testing.T) {
	svc := NewComparisonService(RecommendationConfig{})

	result := svc.Compare(domain.ProductRecord{ID: "sparse", Name: "Sparse"})

	if result.Recommendation.Decision == "" {
		t.Error("Decision empty, want a decision even for a sparse record")
	}
	if result.Summary == "" {
		t.Error("Summary empty, want at least the comparison sentence")
	}
}

func TestBuildSummary_UnnamedProduct(t *testing.T) {
	summary := buildSummary(domain.ProductRecord{}, domain.PeerProduct{
		ProductRecord: domain.ProductRecord{Name: "Peer"},
	}, domain.ComparisonMetrics{})

	if !strings.HasPrefix(summary, "Comparing Product A and Peer.") {
		t.Errorf("summary = %q, want generic A label", summary)
	}
}
