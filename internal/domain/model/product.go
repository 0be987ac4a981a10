package model

// Product is a read-only catalog record. The cart engine never
// mutates products; line items snapshot them by value at add time, so
// later catalog changes do not retroactively reprice carts.
type Product struct {
	ID         string    `json:"id" bson:"id"`
	Name       string    `json:"name" bson:"name"`
	Slug       string    `json:"slug,omitempty" bson:"slug,omitempty"`
	Category   string    `json:"category,omitempty" bson:"category,omitempty"`
	Tagline    string    `json:"tagline,omitempty" bson:"tagline,omitempty"`
	BasePrice  Price     `json:"base_price" bson:"base_price"`
	PriceLabel string    `json:"price_label,omitempty" bson:"price_label,omitempty"`
	Variants   []Variant `json:"variants,omitempty" bson:"variants,omitempty"`
}

// Variant is a purchasable configuration of a product.
type Variant struct {
	Name        string `json:"name" bson:"name"`
	Price       Price  `json:"price" bson:"price"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Variant returns the named variant, or nil when the product has no
// such variant.
func (p *Product) Variant(name string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Name == name {
			return &p.Variants[i]
		}
	}
	return nil
}
