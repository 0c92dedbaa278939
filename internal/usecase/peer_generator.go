package usecase

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Fixed alternative pools for synthetic peer generation. The derivation index
// selects one entry per pool; the pools themselves never change at runtime so
// the same record always yields the same peer.
var (
	ingredientSwapPool = [][]string{
		{"Glycerin", "Niacinamide"},
		{"Squalane", "Glycerin"},
		{"Panthenol", "Glycerin"},
		{"Betaine", "Urea"},
	}

	benefitVariantPool = [][]string{
		{"Hydration", "Soothing"},
		{"Anti-aging", "Firming"},
		{"Brightening", "Even-tone"},
		{"Hydration", "Barrier-repair"},
	}

	concentrationPool = []string{
		"5% Vitamin C", "10% Vitamin C", "15% Vitamin C",
	}

	skinTypeVariantPool = [][]string{
		{"Dry", "Sensitive"},
		{"Normal", "Dry"},
		{"Oily", "Combination"},
		{"All skin types"},
	}

	// Bounded percentage shifts applied to A's price. All strictly positive
	// so the peer price can never drop to zero.
	priceMultiplierPool = []float64{0.8, 1.1, 1.25, 1.5}
)

// PeerGenerator derives a synthetic comparison product from a ProductRecord.
// Generation is a pure function of the record's identifying fields; there is
// no randomness source, so repeated calls (and restarts) produce identical
// peers.
type PeerGenerator struct{}

// NewPeerGenerator creates a peer generator
func NewPeerGenerator() *PeerGenerator {
	return &PeerGenerator{}
}

// Generate builds the synthetic peer for a record. It is total: sparse
// records degrade to pool-only sets and an absent price, never an error.
func (g *PeerGenerator) Generate(record domain.ProductRecord) domain.PeerProduct {
	num := deriveVariantSeed(record)

	swapIdx := int(num % uint32(len(ingredientSwapPool)))
	benefitIdx := int((num >> 3) % uint32(len(benefitVariantPool)))
	concIdx := int((num >> 6) % uint32(len(concentrationPool)))
	skinIdx := int((num >> 9) % uint32(len(skinTypeVariantPool)))
	priceIdx := int((num >> 12) % uint32(len(priceMultiplierPool)))

	// Seed the first ingredient/benefit of A into the peer so the two
	// products always share at least one of each when A has any.
	ingredients := seedAndExtend(record.Ingredients, ingredientSwapPool[swapIdx])
	benefits := seedAndExtend(record.Benefits, benefitVariantPool[benefitIdx])

	price := 0
	if record.HasPrice() {
		price = int(math.Round(float64(record.Price) * priceMultiplierPool[priceIdx]))
		if price < 1 {
			price = 1
		}
	}

	name := record.Name
	if name == "" {
		name = "Product A"
	}

	sourceID := record.ID
	if sourceID == "" {
		sourceID = name
	}

	return domain.PeerProduct{
		ProductRecord: domain.ProductRecord{
			ID:            fmt.Sprintf("peer-%d%d", swapIdx, benefitIdx),
			Name:          name + " (Generated Comparator)",
			Ingredients:   ingredients,
			Benefits:      benefits,
			SkinTypes:     append([]string(nil), skinTypeVariantPool[skinIdx]...),
			Concentration: concentrationPool[concIdx],
			Price:         price,
			Usage:         record.Usage,
			SideEffects:   record.SideEffects,
		},
		GeneratedFrom: sourceID,
		VariantKey: fmt.Sprintf("swap=%d,benefit=%d,conc=%d,skin=%d,price=%d",
			swapIdx, benefitIdx, concIdx, skinIdx, priceIdx),
	}
}

// deriveVariantSeed hashes the record's identity into a small integer.
// md5 is used as a stable mixing function, not for security.
func deriveVariantSeed(record domain.ProductRecord) uint32 {
	base := record.ID
	if base == "" {
		base = record.Name
	}
	if base == "" && len(record.Ingredients) > 0 {
		base = record.Ingredients[0]
	}
	if base == "" {
		base = "product_a"
	}

	digest := md5.Sum([]byte(base))
	return binary.BigEndian.Uint32(digest[:4])
}

// seedAndExtend keeps the first source item and appends the pool items that
// don't duplicate it (case-insensitive)
func seedAndExtend(source []string, pool []string) []string {
	var out []string
	seen := make(map[string]bool)

	if len(source) > 0 {
		out = append(out, source[0])
		seen[strings.ToLower(strings.TrimSpace(source[0]))] = true
	}

	for _, item := range pool {
		key := strings.ToLower(strings.TrimSpace(item))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}

	return out
}
