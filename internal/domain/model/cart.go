package model

import "time"

// ItemKey identifies a cart line item by product and selected variant.
// It is a structural key with defined equality, so separator
// characters in product or variant names cannot cause collisions.
type ItemKey struct {
	ProductID   string `json:"product_id" bson:"product_id"`
	VariantName string `json:"variant_name,omitempty" bson:"variant_name,omitempty"`
}

// LineItem is one row in the cart. Product and Variant are embedded by
// value: a snapshot of catalog data at add time.
type LineItem struct {
	Product   Product   `json:"product" bson:"product"`
	Variant   *Variant  `json:"variant,omitempty" bson:"variant,omitempty"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	AddedAt   time.Time `json:"added_at" bson:"added_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Key returns the structural identity of the line item.
func (li *LineItem) Key() ItemKey {
	key := ItemKey{ProductID: li.Product.ID}
	if li.Variant != nil {
		key.VariantName = li.Variant.Name
	}
	return key
}

// EffectivePrice is the variant price when a variant is selected,
// otherwise the product's base price.
func (li *LineItem) EffectivePrice() Price {
	if li.Variant != nil {
		return li.Variant.Price
	}
	return li.Product.BasePrice
}

// UnitPrice is the numeric contribution of one unit to the subtotal.
func (li *LineItem) UnitPrice() float64 {
	return li.EffectivePrice().Value()
}

// LineTotal is the numeric contribution of the whole line.
func (li *LineItem) LineTotal() float64 {
	return li.UnitPrice() * float64(li.Quantity)
}

// DiscountType enumerates the supported discount policies.
type DiscountType string

const (
	// DiscountPercentage takes a percentage off the subtotal.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixed takes a fixed dollar amount off the subtotal,
	// clamped so the taxable amount never goes negative.
	DiscountFixed DiscountType = "fixed"
	// DiscountFreeShipping waives the shipping charge.
	DiscountFreeShipping DiscountType = "free-shipping"
)

// DiscountPolicy is one entry of the fixed discount registry. At most
// one policy is active on a cart at a time.
type DiscountPolicy struct {
	Code        string       `json:"code" bson:"code"`
	Type        DiscountType `json:"type" bson:"type"`
	Value       float64      `json:"value" bson:"value"`
	Description string       `json:"description" bson:"description"`
}

// CartBreakdown is the derived pricing summary shown at checkout.
// It is recomputed on demand and never persisted.
type CartBreakdown struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxableAmount  float64 `json:"taxable_amount"`
	Tax            float64 `json:"tax"`
	Shipping       float64 `json:"shipping"`
	Total          float64 `json:"total"`
	ItemCount      int     `json:"item_count"`
}
