package usecase

import (
	"fmt"
	"math"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Overlap score weights. The score is a weighted combination of ingredient
// and benefit Jaccard similarity; weights are fixed at equal contribution.
const (
	ingredientWeight = 0.5
	benefitWeight    = 0.5
)

// OverlapScorer computes set-overlap and price-delta metrics between a
// product and its synthetic peer. All methods are pure functions over
// immutable inputs.
type OverlapScorer struct{}

// NewOverlapScorer creates an overlap scorer
func NewOverlapScorer() *OverlapScorer {
	return &OverlapScorer{}
}

// Score computes the comparison metrics for A against B. List fields keep
// the insertion order of the source record rather than being re-sorted, so
// output order stays traceable to input order.
func (s *OverlapScorer) Score(a domain.ProductRecord, b domain.PeerProduct) domain.ComparisonMetrics {
	aIngredients := normalizeTerms(a.Ingredients)
	bIngredients := normalizeTerms(b.Ingredients)
	aBenefits := normalizeTerms(a.Benefits)
	bBenefits := normalizeTerms(b.Benefits)

	ingredientJaccard := jaccard(aIngredients, bIngredients)
	benefitJaccard := jaccard(aBenefits, bBenefits)

	overlap := ingredientWeight*ingredientJaccard + benefitWeight*benefitJaccard
	overlap = clamp01(overlap)

	return domain.ComparisonMetrics{
		SharedIngredients: titleTerms(sharedInOrder(aIngredients, bIngredients)),
		UniqueToA:         titleTerms(uniqueInOrder(aIngredients, bIngredients)),
		UniqueToB:         titleTerms(uniqueInOrder(bIngredients, aIngredients)),
		SharedBenefits:    titleTerms(sharedInOrder(aBenefits, bBenefits)),
		UniqueBenefitsA:   titleTerms(uniqueInOrder(aBenefits, bBenefits)),
		UniqueBenefitsB:   titleTerms(uniqueInOrder(bBenefits, aBenefits)),
		PriceDifference:   priceDifference(a.Price, b.Price),
		OverlapScore:      overlap,
	}
}

// ProsCons derives the pro/con bullet lists for both sides from the metrics.
// A "pro" of A is an item unique to A's sets; a "con" of A mirrors an item
// unique to B. Lists follow the metrics order.
func (s *OverlapScorer) ProsCons(a domain.ProductRecord, b domain.PeerProduct, m domain.ComparisonMetrics) (domain.ProsCons, domain.ProsCons) {
	var sideA, sideB domain.ProsCons

	if a.HasPrice() && b.HasPrice() {
		switch m.PriceDifference.Sign {
		case domain.PriceACheaper:
			sideA.Pros = append(sideA.Pros, fmt.Sprintf("Lower price (%d)", a.Price))
			sideB.Cons = append(sideB.Cons, fmt.Sprintf("Higher price (%d)", b.Price))
		case domain.PriceBCheaper:
			sideB.Pros = append(sideB.Pros, fmt.Sprintf("Lower price (%d)", b.Price))
			sideA.Cons = append(sideA.Cons, fmt.Sprintf("Higher price (%d)", a.Price))
		}
	}

	for _, ing := range m.SharedIngredients {
		label := "Provides " + ing
		sideA.Pros = append(sideA.Pros, label)
		sideB.Pros = append(sideB.Pros, label)
	}
	for _, ing := range m.UniqueToA {
		sideA.Pros = append(sideA.Pros, "Unique ingredient: "+ing)
		sideB.Cons = append(sideB.Cons, "Missing "+ing)
	}
	for _, ing := range m.UniqueToB {
		sideB.Pros = append(sideB.Pros, "Unique ingredient: "+ing)
		sideA.Cons = append(sideA.Cons, "Missing "+ing)
	}

	for _, ben := range m.SharedBenefits {
		label := "Provides " + ben
		sideA.Pros = append(sideA.Pros, label)
		sideB.Pros = append(sideB.Pros, label)
	}
	for _, ben := range m.UniqueBenefitsA {
		sideA.Pros = append(sideA.Pros, "Offers "+ben)
		sideB.Cons = append(sideB.Cons, "Missing "+ben)
	}
	for _, ben := range m.UniqueBenefitsB {
		sideB.Pros = append(sideB.Pros, "Offers "+ben)
		sideA.Cons = append(sideA.Cons, "Missing "+ben)
	}

	return sideA, sideB
}

// priceDifference computes the absolute and percent delta with the sign
// recorded separately. Percent is relative to A and rounded to two decimals;
// a missing price on either side yields a zero delta.
func priceDifference(priceA, priceB int) domain.PriceDifference {
	if priceA <= 0 || priceB <= 0 {
		return domain.PriceDifference{Sign: domain.PriceEqual}
	}

	absolute := priceA - priceB
	if absolute < 0 {
		absolute = -absolute
	}

	divisor := priceA
	if divisor < 1 {
		divisor = 1
	}
	percent := math.Round(float64(absolute)/float64(divisor)*100*100) / 100

	sign := domain.PriceEqual
	if priceA < priceB {
		sign = domain.PriceACheaper
	} else if priceB < priceA {
		sign = domain.PriceBCheaper
	}

	return domain.PriceDifference{
		Absolute: absolute,
		Percent:  percent,
		Sign:     sign,
	}
}

// jaccard computes |intersection| / |union| over normalized term lists.
// An empty union contributes 0, never a division error.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	set := make(map[string]bool, len(a))
	for _, t := range a {
		set[t] = true
	}

	shared := 0
	union := len(a)
	for _, t := range b {
		if set[t] {
			shared++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(shared) / float64(union)
}

// sharedInOrder returns the items of a that also occur in b, in a's order
func sharedInOrder(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}

	var out []string
	for _, t := range a {
		if set[t] {
			out = append(out, t)
		}
	}
	return out
}

// uniqueInOrder returns the items of a absent from b, in a's order
func uniqueInOrder(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, t := range b {
		set[t] = true
	}

	var out []string
	for _, t := range a {
		if !set[t] {
			out = append(out, t)
		}
	}
	return out
}

// normalizeTerms lowercases, trims and deduplicates while preserving order
func normalizeTerms(terms []string) []string {
	var out []string
	seen := make(map[string]bool, len(terms))
	for _, t := range terms {
		norm := strings.ToLower(strings.TrimSpace(t))
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, norm)
	}
	return out
}

// titleTerms title-cases normalized terms for display
func titleTerms(terms []string) []string {
	var out []string
	for _, t := range terms {
		out = append(out, titleCase(t))
	}
	return out
}

// titleCase uppercases the first letter of each space- or hyphen-separated
// word (strings.Title is deprecated and unicode-aware casing is overkill for
// ingredient labels)
func titleCase(s string) string {
	runes := []rune(s)
	upperNext := true
	for i, r := range runes {
		if upperNext && r >= 'a' && r <= 'z' {
			runes[i] = r - 'a' + 'A'
		}
		upperNext = r == ' ' || r == '-'
	}
	return string(runes)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
