package cart

import (
	"strings"

	"github.com/syntriq/cart-service/internal/domain/model"
)

// discountRegistry is the fixed set of redeemable codes. It is a
// deployment-time constant: codes are not user-extensible at runtime,
// and lookup is case-insensitive.
var discountRegistry = map[string]model.DiscountPolicy{
	"SYNTRIQ10": {
		Code:        "SYNTRIQ10",
		Type:        model.DiscountPercentage,
		Value:       10,
		Description: "10% off your order",
	},
	"SAVE50": {
		Code:        "SAVE50",
		Type:        model.DiscountFixed,
		Value:       50,
		Description: "$50 off your order",
	},
	"FREESHIP": {
		Code:        "FREESHIP",
		Type:        model.DiscountFreeShipping,
		Value:       0,
		Description: "Free shipping on your order",
	},
}

// ResolveDiscount maps a user-supplied code to its policy. The second
// return is false for unknown codes; an invalid code is a normal
// outcome, not an error.
func ResolveDiscount(code string) (model.DiscountPolicy, bool) {
	policy, ok := discountRegistry[strings.ToUpper(strings.TrimSpace(code))]
	return policy, ok
}

// DiscountCodes returns the registered codes, for documentation and
// tests.
func DiscountCodes() []string {
	codes := make([]string, 0, len(discountRegistry))
	for code := range discountRegistry {
		codes = append(codes, code)
	}
	return codes
}
