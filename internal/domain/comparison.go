package domain

// PriceSign records which side of a comparison is cheaper
type PriceSign string

const (
	PriceEqual    PriceSign = "equal"
	PriceACheaper PriceSign = "a_cheaper"
	PriceBCheaper PriceSign = "b_cheaper"
)

// PriceDifference is the price delta between product A and its peer.
// Percent is relative to A's price and rounded to two decimal places.
type PriceDifference struct {
	Absolute int       `json:"absolute"`
	Percent  float64   `json:"percent"`
	Sign     PriceSign `json:"sign"`
}

// Decision is a recommendation category. The engine only ever emits one of
// these; callers can rely on the set being closed.
type Decision string

const (
	DecisionPreferA       Decision = "prefer_a"
	DecisionPreferB       Decision = "prefer_b"
	DecisionCompareByNeed Decision = "compare_by_need"
	DecisionConsiderA     Decision = "consider_a"
	DecisionConsiderB     Decision = "consider_b"
)

// Recommendation is the verdict of the ordered decision table plus the tags
// of the rule that produced it
type Recommendation struct {
	Decision      Decision `json:"decision"`
	RationaleTags []string `json:"rationaleTags"`
}

// ComparisonMetrics is the immutable scorer output consumed by the
// recommendation engine. The engine never re-derives any of these values.
type ComparisonMetrics struct {
	SharedIngredients []string        `json:"sharedIngredients"`
	UniqueToA         []string        `json:"uniqueToA"`
	UniqueToB         []string        `json:"uniqueToB"`
	SharedBenefits    []string        `json:"sharedBenefits"`
	UniqueBenefitsA   []string        `json:"uniqueBenefitsA"`
	UniqueBenefitsB   []string        `json:"uniqueBenefitsB"`
	PriceDifference   PriceDifference `json:"priceDifference"`
	OverlapScore      float64         `json:"overlapScore"` // weighted Jaccard, [0,1]
}

// ProsCons holds the derived pro/con bullet lists for one product side
type ProsCons struct {
	Pros []string `json:"pros"`
	Cons []string `json:"cons"`
}

// ComparisonResult is the full comparison object consumed by templating
type ComparisonResult struct {
	PeerProduct    PeerProduct       `json:"peerProduct"`
	Metrics        ComparisonMetrics `json:"metrics"`
	ProductA       ProsCons          `json:"productA"`
	ProductB       ProsCons          `json:"productB"`
	Recommendation Recommendation    `json:"recommendation"`
	Summary        string            `json:"summary"`
	GeneratedNote  string            `json:"generatedNote"`
}
