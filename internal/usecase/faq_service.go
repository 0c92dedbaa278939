package usecase

import (
	"fmt"
	"log"
	"strings"

	"github.com/glowpage/backend/internal/domain"
)

// Question categories
const (
	CategoryInformational = "Informational"
	CategoryUsage         = "Usage"
	CategorySafety        = "Safety"
	CategoryPurchase      = "Purchase"
	CategoryComparison    = "Comparison"
	CategoryIngredients   = "Ingredients"
	CategoryBenefits      = "Benefits"
	CategorySuitability   = "Suitability"
	CategoryStorage       = "Storage"
	CategoryShelfLife     = "ShelfLife"
)

// FAQService produces the static question catalog and deterministic,
// rule-based draft answers. No text here is generated; every answer is
// either a product field or a fixed fallback string, so drafts can serve as
// the grounding source of truth for rewriting.
type FAQService struct{}

// NewFAQService creates a FAQ service
func NewFAQService() *FAQService {
	return &FAQService{}
}

// Questions returns the categorized question catalog for a record
func (s *FAQService) Questions(record domain.ProductRecord) []domain.Question {
	name := record.Name
	if name == "" {
		name = "the product"
	}

	return []domain.Question{
		{ID: "q1", Category: CategoryInformational, Text: fmt.Sprintf("What is %s used for?", name)},
		{ID: "q2", Category: CategoryUsage, Text: "How do I use this product?"},
		{ID: "q3", Category: CategoryIngredients, Text: "What are the key ingredients?"},
		{ID: "q4", Category: CategoryBenefits, Text: "What benefits can I expect?"},
		{ID: "q5", Category: CategorySafety, Text: "Are there any side effects?"},
		{ID: "q6", Category: CategorySuitability, Text: "Which skin types is it suitable for?"},
		{ID: "q7", Category: CategoryPurchase, Text: "What is the price and value for money?"},
		{ID: "q8", Category: CategoryComparison, Text: "How does it compare to similar products?"},
		{ID: "q9", Category: CategoryStorage, Text: "How should I store it?"},
		{ID: "q10", Category: CategoryShelfLife, Text: "When does it expire?"},
	}
}

// DraftAnswers produces a deterministic answer for every question via
// keyword routing over the question text. Missing product fields yield safe
// fallback strings rather than invented content.
func (s *FAQService) DraftAnswers(record domain.ProductRecord, questions []domain.Question) []domain.DraftAnswer {
	log.Printf("[FAQ] Drafting deterministic answers: product=%s questions=%d", record.ID, len(questions))

	drafts := make([]domain.DraftAnswer, 0, len(questions))
	for _, q := range questions {
		drafts = append(drafts, domain.DraftAnswer{
			Question: q.Text,
			Category: q.Category,
			Answer:   draftAnswer(record, q.Text),
		})
	}
	return drafts
}

// draftAnswer routes one question to a product field by keyword, in a fixed
// priority order
func draftAnswer(record domain.ProductRecord, question string) string {
	text := strings.ToLower(strings.TrimSpace(question))

	switch {
	case containsAny(text, "use", "apply", "how to"):
		usage := textOrFallback(record.Usage, "Usage information was not provided.")
		return "You can use it as follows: " + usage

	case strings.Contains(text, "ingredient"):
		return listOrFallback(record.Ingredients, "Key ingredients were not provided.")

	case containsAny(text, "benefit", "good for"):
		return listOrFallback(record.Benefits, "Benefits were not provided.")

	case containsAny(text, "side effect", "safe", "sensitive"):
		return textOrFallback(record.SideEffects, "No safety information was provided.")

	case containsAny(text, "skin", "suitable"):
		return listOrFallback(record.SkinTypes, "Skin suitability information was not provided.")

	case containsAny(text, "price", "cost"):
		if record.HasPrice() {
			return fmt.Sprintf("The price is ₹%d.", record.Price)
		}
		return "Price information was not provided."

	case containsAny(text, "compare", "difference"):
		return "Comparison information is available in the comparison section."

	case containsAny(text, "where to buy", "purchase"):
		return "Purchase information was not provided."

	case containsAny(text, "store", "storage"):
		return "Storage instructions were not provided."

	case containsAny(text, "shelf", "expire", "expiry"):
		return "Shelf-life information was not provided."
	}

	return "This information was not provided in the product details."
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func textOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func listOrFallback(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
