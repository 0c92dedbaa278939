package domain

import "time"

// Question is one entry of the static question catalog
type Question struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

// DraftAnswer is a deterministic, rule-generated answer to one question.
// Drafts are the grounding source of truth for any later rewriting.
type DraftAnswer struct {
	Question string `json:"question"`
	Category string `json:"category"`
	Answer   string `json:"answer"`
}

// RejectReason is the fixed taxonomy of grounding-validation failures
type RejectReason string

const (
	RejectBlacklistedTerm RejectReason = "blacklisted_term"
	RejectNumericMismatch RejectReason = "numeric_mismatch"
	RejectNewNumeric      RejectReason = "new_numeric"
	RejectLengthExceeded  RejectReason = "length_exceeded"
	RejectEntityDrift     RejectReason = "entity_drift"
)

// ValidationVerdict is the outcome of checking a rewrite candidate against
// its draft. When Accepted is false, FinalText is the draft verbatim.
type ValidationVerdict struct {
	Accepted  bool         `json:"accepted"`
	Reason    RejectReason `json:"reason,omitempty"`
	Candidate string       `json:"candidate"`
	FinalText string       `json:"finalText"`
}

// FinalAnswer is a finalized FAQ item. ValidationReason is set only when a
// rewrite candidate was rejected and the draft was kept.
type FinalAnswer struct {
	Question         string       `json:"question"`
	Category         string       `json:"category"`
	Answer           string       `json:"answer"`
	ValidationReason RejectReason `json:"validationReason,omitempty"`
}

// ProductPage is the assembled output: header, finalized FAQ and comparison
type ProductPage struct {
	RunID       string           `json:"runId"`
	ProductID   string           `json:"productId"`
	Title       string           `json:"title"`
	Price       int              `json:"price,omitempty"`
	HeroBlurb   string           `json:"heroBlurb,omitempty"`
	FAQ         []FinalAnswer    `json:"faq"`
	Comparison  ComparisonResult `json:"comparison"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
