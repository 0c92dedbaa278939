package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Default length heuristic: a candidate longer than
// max(lengthFloor, lengthMultiplier * len(draft)) is runaway elaboration.
// The floor keeps one-word drafts from forbidding any rewrite at all.
const (
	defaultLengthMultiplier = 4
	defaultLengthFloor      = 600
)

// blacklistTerms is the fixed disallowed-claims vocabulary. Matched
// case-insensitively on word boundaries; a rewrite may never introduce
// medical-authority or guarantee language the draft did not carry.
var blacklistTerms = []string{
	"clinical", "clinically", "study", "proven", "fda", "dermatologist",
	"guarantee", "guaranteed", "cure", "cures", "medical-grade",
}

var blacklistRegex = regexp.MustCompile(`(?i)\b(` + strings.Join(blacklistTerms, "|") + `)\b`)

// numericTokenRegex extracts numeric tokens: currency-prefixed amounts,
// percentages, decimals and plain integers. Thousands separators are
// stripped during normalization.
var numericTokenRegex = regexp.MustCompile(`[₹$€]\s?\d[\d,]*(?:\.\d+)?|\d[\d,]*(?:\.\d+)?\s?%|\d[\d,]*(?:\.\d+)?`)

// wordTokenRegex splits candidate text into lowercase word tokens for the
// entity-drift check
var wordTokenRegex = regexp.MustCompile(`[a-zA-Z][a-zA-Z-]*`)

// entityTerms is the vocabulary of skincare ingredient/benefit words the
// drift check recognizes. A candidate using one of these must be backed by
// the record's own fields or the draft.
var entityTerms = map[string]bool{
	// Actives and bases
	"retinol": true, "niacinamide": true, "glycerin": true, "squalane": true,
	"panthenol": true, "urea": true, "betaine": true, "ceramide": true,
	"ceramides": true, "peptide": true, "peptides": true, "collagen": true,
	"hyaluronic": true, "salicylic": true, "glycolic": true, "lactic": true,
	"mandelic": true, "azelaic": true, "kojic": true, "arbutin": true,
	"tretinoin": true, "bakuchiol": true, "caffeine": true, "zinc": true,
	"vitamin": true, "tocopherol": true, "ferulic": true, "resveratrol": true,
	"centella": true, "aloe": true, "spf": true, "sunscreen": true,
	// Benefit vocabulary
	"brightening": true, "hydration": true, "hydrating": true, "soothing": true,
	"firming": true, "anti-aging": true, "antiaging": true, "exfoliating": true,
	"exfoliation": true, "barrier-repair": true, "even-tone": true,
	"depigmentation": true, "whitening": true, "plumping": true,
	"mattifying": true, "pore-minimizing": true,
}

// GroundingValidatorConfig holds the length heuristic settings
type GroundingValidatorConfig struct {
	LengthMultiplier int
	LengthFloor      int
}

// GroundingValidator checks a rewrite candidate against its source draft and
// the product record. It is a pure function of its inputs: no network, no
// state, and the checks run in a fixed order, short-circuiting on the first
// failure (fail-closed).
type GroundingValidator struct {
	lengthMultiplier int
	lengthFloor      int
}

// NewGroundingValidator creates a validator, substituting documented
// defaults for zero-valued settings
func NewGroundingValidator(config GroundingValidatorConfig) *GroundingValidator {
	multiplier := config.LengthMultiplier
	if multiplier <= 0 {
		multiplier = defaultLengthMultiplier
	}
	floor := config.LengthFloor
	if floor <= 0 {
		floor = defaultLengthFloor
	}

	return &GroundingValidator{
		lengthMultiplier: multiplier,
		lengthFloor:      floor,
	}
}

// Validate runs the check sequence. On any failure the verdict carries the
// specific reason and the final text is the draft verbatim.
func (v *GroundingValidator) Validate(draft domain.DraftAnswer, candidate string, record domain.ProductRecord) domain.ValidationVerdict {
	reject := func(reason domain.RejectReason) domain.ValidationVerdict {
		return domain.ValidationVerdict{
			Accepted:  false,
			Reason:    reason,
			Candidate: candidate,
			FinalText: draft.Answer,
		}
	}

	if strings.TrimSpace(candidate) == "" {
		return reject(domain.RejectEntityDrift)
	}

	// 1. Blacklisted claims, regardless of case.
	if blacklistRegex.MatchString(candidate) {
		return reject(domain.RejectBlacklistedTerm)
	}

	draftTokens := extractNumericTokens(draft.Answer)
	candidateTokens := extractNumericTokens(candidate)

	// 2. Numeric preservation: every draft number must survive unchanged.
	// A number may be omitted only when the information is dropped outright,
	// i.e. the candidate carries no other number of the same kind.
	if reason, ok := checkNumericPreservation(draftTokens, candidateTokens); !ok {
		return reject(reason)
	}

	// 3. No new numerics: every candidate number must come from the draft or
	// the record's canonical fields.
	recordValues := recordNumericValues(record)
	for _, token := range candidateTokens {
		if containsToken(draftTokens, token) || recordValues[token.value] {
			continue
		}
		return reject(domain.RejectNewNumeric)
	}

	// 4. Length heuristic.
	limit := v.lengthMultiplier * len(draft.Answer)
	if limit < v.lengthFloor {
		limit = v.lengthFloor
	}
	if len(candidate) > limit {
		return reject(domain.RejectLengthExceeded)
	}

	// 5. Entity drift: known ingredient/benefit terms must be backed by the
	// record's vocabulary or the draft itself.
	if hasEntityDrift(draft.Answer, candidate, record) {
		return reject(domain.RejectEntityDrift)
	}

	return domain.ValidationVerdict{
		Accepted:  true,
		Candidate: candidate,
		FinalText: candidate,
	}
}

// numericKind classifies a token so omission checks can distinguish a price
// from a percentage
type numericKind int

const (
	kindPlain numericKind = iota
	kindCurrency
	kindPercent
)

type numericToken struct {
	kind  numericKind
	value string // digits and decimal point only, separators stripped
}

// extractNumericTokens pulls every numeric token out of text, classified and
// normalized
func extractNumericTokens(text string) []numericToken {
	var tokens []numericToken
	for _, match := range numericTokenRegex.FindAllString(text, -1) {
		kind := kindPlain
		switch {
		case strings.HasPrefix(match, "₹"), strings.HasPrefix(match, "$"), strings.HasPrefix(match, "€"):
			kind = kindCurrency
		case strings.HasSuffix(strings.TrimSpace(match), "%"):
			kind = kindPercent
		}

		value := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, match)
		if value == "" {
			continue
		}

		tokens = append(tokens, numericToken{kind: kind, value: value})
	}
	return tokens
}

// checkNumericPreservation verifies that each draft token appears unchanged
// in the candidate, tolerating a missing token only when the candidate has
// no substitute number of the same kind
func checkNumericPreservation(draftTokens, candidateTokens []numericToken) (domain.RejectReason, bool) {
	for _, dt := range draftTokens {
		if containsToken(candidateTokens, dt) {
			continue
		}
		for _, ct := range candidateTokens {
			if ct.kind == dt.kind && !containsToken(draftTokens, ct) {
				// The draft number is gone but a different one of the same
				// kind took its place: paraphrased into a different number.
				return domain.RejectNumericMismatch, false
			}
		}
	}
	return "", true
}

func containsToken(tokens []numericToken, want numericToken) bool {
	for _, t := range tokens {
		if t.value == want.value {
			return true
		}
	}
	return false
}

// recordNumericValues collects the numeric values present in the record's
// canonical fields (price and concentration)
func recordNumericValues(record domain.ProductRecord) map[string]bool {
	values := make(map[string]bool)
	if record.HasPrice() {
		values[strconv.Itoa(record.Price)] = true
	}
	for _, t := range extractNumericTokens(record.Concentration) {
		values[t.value] = true
	}
	return values
}

// hasEntityDrift reports whether the candidate introduces a known
// ingredient/benefit term that neither the record nor the draft contains
func hasEntityDrift(draft, candidate string, record domain.ProductRecord) bool {
	vocab := strings.ToLower(strings.Join([]string{
		strings.Join(record.Ingredients, " "),
		strings.Join(record.Benefits, " "),
		strings.Join(record.SkinTypes, " "),
		record.Concentration,
		record.Name,
		record.Usage,
		record.SideEffects,
		draft,
	}, " "))

	for _, word := range wordTokenRegex.FindAllString(strings.ToLower(candidate), -1) {
		if !entityTerms[word] {
			continue
		}
		if !strings.Contains(vocab, word) {
			return true
		}
	}
	return false
}
