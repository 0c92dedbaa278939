package domain

// RawProductInput is the labeled-field payload accepted by the API before
// normalization into a ProductRecord
type RawProductInput struct {
	ProductName    string `json:"productName" binding:"required"`
	Concentration  string `json:"concentration,omitempty"`
	SkinType       string `json:"skinType,omitempty"`
	KeyIngredients string `json:"keyIngredients,omitempty"`
	Benefits       string `json:"benefits,omitempty"`
	HowToUse       string `json:"howToUse,omitempty"`
	SideEffects    string `json:"sideEffects,omitempty"`
	Price          string `json:"price,omitempty"` // e.g. "₹699", "699"
}

// ProductRecord is the canonical, immutable product entity every generator
// reads from. Collection fields are deduplicated and keep their input order;
// Price is in minor currency units, 0 meaning absent.
type ProductRecord struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Ingredients   []string `json:"ingredients"`
	Benefits      []string `json:"benefits"`
	SkinTypes     []string `json:"skinTypes"`
	Concentration string   `json:"concentration,omitempty"`
	Price         int      `json:"price,omitempty"`
	Usage         string   `json:"usage,omitempty"`
	SideEffects   string   `json:"sideEffects,omitempty"`
}

// HasPrice reports whether a price was supplied for the record.
func (r ProductRecord) HasPrice() bool {
	return r.Price > 0
}

// PeerProduct is a synthetic comparison product derived deterministically
// from a ProductRecord. It is never a real SKU.
type PeerProduct struct {
	ProductRecord
	GeneratedFrom string `json:"generatedFrom"` // source record ID
	VariantKey    string `json:"variantKey"`    // pool indices used, for traceability
}

// ProductContext is the compact product summary handed to the rewriter
type ProductContext struct {
	Name          string `json:"name"`
	Concentration string `json:"concentration,omitempty"`
	Price         int    `json:"price,omitempty"`
}

// Context builds the compact rewriter-facing view of a record.
func (r ProductRecord) Context() ProductContext {
	return ProductContext{
		Name:          r.Name,
		Concentration: r.Concentration,
		Price:         r.Price,
	}
}
