package usecase

import (
	"strings"
	"testing"

	"github.com/glowpage/backend/internal/domain"
)

func draftFor(answer string) domain.DraftAnswer {
	return domain.DraftAnswer{
		Question: "How do I use this product?",
		Category: CategoryUsage,
		Answer:   answer,
	}
}

func TestValidate_AcceptsFaithfulParaphrase(t *testing.T) {
	v := NewGroundingValidator(GroundingValidatorConfig{})
	record := sampleRecord()

	draft := draftFor("You can use it as follows: Apply 2–3 drops in the morning before sunscreen")
	candidate := "Use 2–3 drops each morning, before your sunscreen."

	verdict := v.Validate(draft, candidate, record)

	if !verdict.Accepted {
		t.Fatalf("Validate() rejected faithful paraphrase: %s", verdict.Reason)
	}
	if verdict.FinalText != candidate {
		t.Errorf("FinalText = %q, want accepted candidate", verdict.FinalText)
	}
	if verdict.Reason != "" {
		t.Errorf("Reason = %q, want empty on acceptance", verdict.Reason)
	}
}

func TestValidate_RejectsBlacklistedClaims(t *testing.T) {
	v := NewGroundingValidator(GroundingValidatorConfig{})
	record := sampleRecord()
	draft := draftFor("It helps with: Brightening, Fades dark spots.")

	tests := []struct {
		name      string
		candidate string
	}{
		{"medical authority", "This serum is clinically tested for brightening."},
		{"case insensitive", "Results GUARANTEED for dark spots."},
		{"embedded claim", "A study showed it fades dark spots."},
		{"regulator name", "It is FDA approved for daily use."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict := v.Validate(draft, tt.candidate, record)
			if verdict.Accepted {
				t.Fatal("Validate() accepted blacklisted claim")
			}
			if verdict.Reason != domain.RejectBlacklistedTerm {
				t.Errorf("Reason = %s, want %s", verdict.Reason, domain.RejectBlacklistedTerm)
			}
			if verdict.FinalText != draft.Answer {
				t.Errorf("FinalText = %q, want draft verbatim", verdict.FinalText)
			}
		})
	}
}

func TestValidate_NumericPreservation(t *testing.T) {
	v := NewGroundingValidator(GroundingValidatorConfig{})
	record := sampleRecord()

	t.Run("altered price is a mismatch", func(t *testing.T) {
		draft := draftFor("The price is ₹699.")
		verdict := v.Validate(draft, "It costs ₹750.", record)
		if verdict.Accepted {
			t.Fatal("Validate() accepted altered price")
		}
		if verdict.Reason != domain.RejectNumericMismatch {
			t.Errorf("Reason = %s, want %s", verdict.Reason, domain.RejectNumericMismatch)
		}
	})

	t.Run("dropped number without substitute is allowed", func(t *testing.T) {
		draft := draftFor("Apply 2–3 drops in the morning before sunscreen")
		verdict := v.Validate(draft, "Apply a few drops in the morning before sunscreen.", record)
		if !verdict.Accepted {
			t.Errorf("Validate() rejected omission: %s", verdict.Reason)
		}
	})

	t.Run("kept numbers pass", func(t *testing.T) {
		draft := draftFor("The price is ₹699.")
		verdict := v.Validate(draft, "This product is priced at ₹699.", record)
		if !verdict.Accepted {
			t.Errorf("Validate() rejected preserved price: %s", verdict.Reason)
		}
	})
}

func TestValidate_NewNumerics(t *testing.T) {
	v := NewGroundingValidator(GroundingValidatorConfig{})
	record := sampleRecord()
	draft := draftFor("It helps with: Brightening, Fades dark spots.")

	t.Run("fabricated number is rejected", func(t *testing.T) {
		verdict := v.Validate(draft, "It fades dark spots within 14 days.", record)
		if verdict.Accepted {
			t.Fatal("Validate() accepted fabricated number")
		}
		if verdict.Reason != domain.RejectNewNumeric {
			t.Errorf("Reason = %s, want %s", verdict.Reason, domain.RejectNewNumeric)
		}
	})

	t.Run("record price is a permitted source", func(t *testing.T) {
		verdict := v.Validate(draft, "It brightens and fades dark spots, at ₹699.", record)
		if !verdict.Accepted {
			t.Errorf("Validate() rejected record-backed price: %s", verdict.Reason)
		}
	})

	t.Run("concentration value is a permitted source", func(t *testing.T) {
		verdict := v.Validate(draft, "The 10% formula helps fade dark spots.", record)
		if !verdict.Accepted {
			t.Errorf("Validate() rejected record-backed concentration: %s", verdict.Reason)
		}
	})
}

func TestValidate_LengthHeuristic(t *testing.T) {
	record := sampleRecord()
	draft := draftFor("It is suitable for: Oily, Combination.")

	t.Run("runaway elaboration is rejected", func(t *testing.T) {
		v := NewGroundingValidator(GroundingValidatorConfig{})
		candidate := strings.Repeat("It suits oily and combination skin. ", 30)
		verdict := v.Validate(draft, candidate, record)
		if verdict.Accepted {
			t.Fatal("Validate() accepted oversized candidate")
		}
		if verdict.Reason != domain.RejectLengthExceeded {
			t.Errorf("Reason = %s, want %s", verdict.Reason, domain.RejectLengthExceeded)
		}
	})

	t.Run("floor protects short drafts", func(t *testing.T) {
		v := NewGroundingValidator(GroundingValidatorConfig{LengthFloor: 600, LengthMultiplier: 4})
		candidate := "This serum works for oily as well as combination skin types."
		verdict := v.Validate(draft, candidate, record)
		if !verdict.Accepted {
			t.Errorf("Validate() rejected candidate within floor: %s", verdict.Reason)
		}
	})
}

func TestValidate_EntityDrift(t *testing.T) {
	v := NewGroundingValidator(GroundingValidatorConfig{})
	record := sampleRecord()
	draft := draftFor("It contains: Vitamin C, Hyaluronic Acid.")

	t.Run("foreign ingredient is rejected", func(t *testing.T) {
		verdict := v.Validate(draft, "It contains vitamin C and retinol.", record)
		if verdict.Accepted {
			t.Fatal("Validate() accepted foreign ingredient")
		}
		if verdict.Reason != domain.RejectEntityDrift {
			t.Errorf("Reason = %s, want %s", verdict.Reason, domain.RejectEntityDrift)
		}
	})

	t.Run("record-backed terms pass", func(t *testing.T) {
		verdict := v.Validate(draft, "Its key actives are vitamin C and hyaluronic acid.", record)
		if !verdict.Accepted {
			t.Errorf("Validate() rejected record-backed terms: %s", verdict.Reason)
		}
	})

	t.Run("empty candidate is rejected", func(t *testing.T) {
		verdict := v.Validate(draft, "   ", record)
		if verdict.Accepted {
			t.Fatal("Validate() accepted blank candidate")
		}
		if verdict.FinalText != draft.Answer {
			t.Errorf("FinalText = %q, want draft verbatim", verdict.FinalText)
		}
	})
}

func TestValidate_VerdictCarriesCandidate(t *testing.T) {
	v := NewGroundingValidator(GroundingValidatorConfig{})
	record := sampleRecord()
	draft := draftFor("The price is ₹699.")
	candidate := "It costs ₹750."

	verdict := v.Validate(draft, candidate, record)

	if verdict.Candidate != candidate {
		t.Errorf("Candidate = %q, want rejected text kept for diagnostics", verdict.Candidate)
	}
}
