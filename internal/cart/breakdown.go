package cart

import (
	"math"

	"github.com/syntriq/cart-service/internal/domain/model"
)

// Business constants for the breakdown calculation. These are fixed
// deployment-time values, not runtime configuration.
const (
	// TaxRate is the flat sales tax applied to the taxable amount.
	TaxRate = 0.08
	// FlatShippingFee is charged when no free-shipping rule applies.
	FlatShippingFee = 500.0
	// FreeShippingThreshold is the subtotal at which shipping is waived.
	FreeShippingThreshold = 10000.0
)

// ComputeBreakdown derives the pricing summary from a line item
// collection and the active discount policy. It is a pure function:
// same inputs, same breakdown, nothing stored.
//
// The composition order is fixed: subtotal, discount, taxable amount,
// tax, shipping, total.
func ComputeBreakdown(items []model.LineItem, policy *model.DiscountPolicy) model.CartBreakdown {
	var breakdown model.CartBreakdown

	for i := range items {
		breakdown.Subtotal += items[i].LineTotal()
		breakdown.ItemCount += items[i].Quantity
	}

	breakdown.DiscountAmount = discountAmount(breakdown.Subtotal, policy)
	breakdown.TaxableAmount = breakdown.Subtotal - breakdown.DiscountAmount
	breakdown.Tax = breakdown.TaxableAmount * TaxRate
	breakdown.Shipping = shippingFee(breakdown.Subtotal, policy)
	breakdown.Total = breakdown.TaxableAmount + breakdown.Tax + breakdown.Shipping

	return roundBreakdown(breakdown)
}

// discountAmount computes the discount contribution. A fixed discount
// is clamped to the subtotal so the taxable amount never goes negative.
func discountAmount(subtotal float64, policy *model.DiscountPolicy) float64 {
	if policy == nil {
		return 0
	}
	switch policy.Type {
	case model.DiscountPercentage:
		return subtotal * (policy.Value / 100)
	case model.DiscountFixed:
		return math.Min(policy.Value, subtotal)
	}
	return 0
}

// shippingFee is zero for an empty cart, above the free-shipping
// threshold, or under an active free-shipping policy; otherwise the
// flat fee applies.
func shippingFee(subtotal float64, policy *model.DiscountPolicy) float64 {
	if subtotal == 0 {
		return 0
	}
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	if policy != nil && policy.Type == model.DiscountFreeShipping {
		return 0
	}
	return FlatShippingFee
}

// roundBreakdown rounds every monetary field to cents. The inputs are
// display currency; rounding keeps float noise out of the published
// figures without changing any business value.
func roundBreakdown(b model.CartBreakdown) model.CartBreakdown {
	b.Subtotal = roundCents(b.Subtotal)
	b.DiscountAmount = roundCents(b.DiscountAmount)
	b.TaxableAmount = roundCents(b.TaxableAmount)
	b.Tax = roundCents(b.Tax)
	b.Shipping = roundCents(b.Shipping)
	b.Total = roundCents(b.Total)
	return b
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
