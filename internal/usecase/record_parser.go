package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	digitsRegex     = regexp.MustCompile(`\d+`)
	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// RecordParser normalizes raw labeled input into the canonical
// ProductRecord. List fields arrive comma-separated; prices arrive as free
// text like "₹699" or "1,299". Parsing never fails: absent or unparseable
// fields degrade to empty values so the engines downstream stay total.
type RecordParser struct{}

// NewRecordParser creates a record parser
func NewRecordParser() *RecordParser {
	return &RecordParser{}
}

// Parse builds a ProductRecord from raw input. Only a missing product name
// is treated as malformed; everything else degrades gracefully.
func (p *RecordParser) Parse(raw domain.RawProductInput) (domain.ProductRecord, error) {
	record := domain.ProductRecord{
		ID:            recordID(raw.ProductName),
		Name:          strings.TrimSpace(raw.ProductName),
		Ingredients:   splitList(raw.KeyIngredients),
		Benefits:      splitList(raw.Benefits),
		SkinTypes:     splitList(raw.SkinType),
		Concentration: strings.TrimSpace(raw.Concentration),
		Price:         parsePrice(raw.Price),
		Usage:         strings.TrimSpace(raw.HowToUse),
		SideEffects:   strings.TrimSpace(raw.SideEffects),
	}

	if record.Name == "" {
		return record, domain.ErrMalformedRecord
	}
	return record, nil
}

// recordID derives a stable identifier from the product name
func recordID(name string) string {
	id := strings.ToLower(strings.TrimSpace(name))
	id = multiSpaceRegex.ReplaceAllString(id, "-")
	if id == "" {
		return "product-001"
	}
	return id
}

// splitList splits a comma-separated field into trimmed, deduplicated items
// preserving input order
func splitList(field string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(field, ",") {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		key := strings.ToLower(item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}

// parsePrice extracts the integer price from free text, tolerating currency
// symbols and thousands separators. Unparseable input means "absent".
func parsePrice(field string) int {
	cleaned := strings.ReplaceAll(field, ",", "")
	match := digitsRegex.FindString(cleaned)
	if match == "" {
		return 0
	}

	price, err := strconv.Atoi(match)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
