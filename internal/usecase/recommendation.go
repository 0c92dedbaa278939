package usecase

import (
	"fmt"

	"github.com/glowpage/backend/internal/domain"
)

// Default recommendation thresholds. Documented here and in config; the
// engine receives validated values and never re-checks ranges.
const (
	defaultHighSimilarity       = 0.70
	defaultLowSimilarity        = 0.35
	defaultUniqueMargin         = 2
	defaultModestPremiumPercent = 25.0
)

// RecommendationConfig holds the thresholds for the decision table
type RecommendationConfig struct {
	HighSimilarity       float64
	LowSimilarity        float64
	UniqueMargin         int
	ModestPremiumPercent float64
}

// RecommendationEngine applies an ordered, first-match decision table over
// comparison metrics. Evaluation is deterministic and every threshold
// boundary resolves in favor of product A.
type RecommendationEngine struct {
	highSimilarity       float64
	lowSimilarity        float64
	uniqueMargin         int
	modestPremiumPercent float64
}

// NewRecommendationEngine creates an engine, substituting documented
// defaults for zero-valued thresholds
func NewRecommendationEngine(config RecommendationConfig) *RecommendationEngine {
	high := config.HighSimilarity
	if high <= 0 {
		high = defaultHighSimilarity
	}
	low := config.LowSimilarity
	if low <= 0 {
		low = defaultLowSimilarity
	}
	margin := config.UniqueMargin
	if margin <= 0 {
		margin = defaultUniqueMargin
	}
	premium := config.ModestPremiumPercent
	if premium <= 0 {
		premium = defaultModestPremiumPercent
	}

	return &RecommendationEngine{
		highSimilarity:       high,
		lowSimilarity:        low,
		uniqueMargin:         margin,
		modestPremiumPercent: premium,
	}
}

// Recommend walks the decision table in order and returns the first matching
// verdict. The metrics object is read-only; nothing is recomputed here.
//
// Rule order:
//  1. High overlap and A cheaper or equal -> prefer A (substantially
//     equivalent products, no reason to pay more).
//  2. B has materially more unique items and its premium is modest -> prefer B.
//  3. Low overlap -> no blanket winner, compare by specific need.
//  4. Default: consider whichever side is cheaper, ties to A.
func (e *RecommendationEngine) Recommend(m domain.ComparisonMetrics) domain.Recommendation {
	aNotPricier := m.PriceDifference.Sign == domain.PriceACheaper ||
		m.PriceDifference.Sign == domain.PriceEqual

	// Rule 1: substantially equivalent, A at most as expensive.
	// The boundary overlap == highSimilarity counts as similar.
	if m.OverlapScore >= e.highSimilarity && aNotPricier {
		return domain.Recommendation{
			Decision: domain.DecisionPreferA,
			RationaleTags: []string{
				"high_overlap",
				"a_cheaper_or_equal",
				fmt.Sprintf("overlap=%.3f", m.OverlapScore),
			},
		}
	}

	// Rule 2: B brings materially more unique items at a modest premium.
	// Premium exactly at the threshold does not qualify (tie favors A).
	uniqueA := len(m.UniqueToA) + len(m.UniqueBenefitsA)
	uniqueB := len(m.UniqueToB) + len(m.UniqueBenefitsB)
	premium := bPremiumPercent(m.PriceDifference)
	if uniqueB-uniqueA >= e.uniqueMargin && premium < e.modestPremiumPercent {
		return domain.Recommendation{
			Decision: domain.DecisionPreferB,
			RationaleTags: []string{
				"b_more_unique_items",
				"modest_premium",
				fmt.Sprintf("unique_delta=%d", uniqueB-uniqueA),
			},
		}
	}

	// Rule 3: too dissimilar for a blanket winner.
	if m.OverlapScore < e.lowSimilarity {
		return domain.Recommendation{
			Decision: domain.DecisionCompareByNeed,
			RationaleTags: []string{
				"low_overlap",
				fmt.Sprintf("overlap=%.3f", m.OverlapScore),
			},
		}
	}

	// Rule 4: default to the cheaper side, equal price resolves to A.
	if m.PriceDifference.Sign == domain.PriceBCheaper {
		return domain.Recommendation{
			Decision:      domain.DecisionConsiderB,
			RationaleTags: []string{"default", "b_cheaper"},
		}
	}
	return domain.Recommendation{
		Decision:      domain.DecisionConsiderA,
		RationaleTags: []string{"default", "a_cheaper_or_equal"},
	}
}

// bPremiumPercent is the percent B costs over A; zero when B is cheaper or
// prices are equal or absent
func bPremiumPercent(d domain.PriceDifference) float64 {
	if d.Sign == domain.PriceACheaper {
		return d.Percent
	}
	return 0
}
