// Package model defines the core domain entities for the cart service.
package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// PriceKind discriminates the price union. Catalog data mixes plain
// numbers, sentinel strings ("Free", "Custom"), and formatted labels
// like "$49/month"; every representation is resolved into a Price
// exactly once, at the catalog boundary.
type PriceKind string

const (
	// PriceNumeric is a concrete dollar amount.
	PriceNumeric PriceKind = "numeric"
	// PriceFree marks a zero-cost offering ("Free" in catalog data).
	PriceFree PriceKind = "free"
	// PriceCustom marks quote-based pricing ("Custom" in catalog data).
	// It contributes zero to totals; display code must branch on the
	// kind instead of showing $0.00.
	PriceCustom PriceKind = "custom"
)

// Price is a tagged price value. Amount is only meaningful for
// PriceNumeric. Label preserves the original formatted string
// ("$49/month") for display; it is empty for plain numeric prices.
type Price struct {
	Kind   PriceKind
	Amount float64
	Label  string
}

// Sentinel strings used by the catalog.
const (
	freeSentinel   = "Free"
	customSentinel = "Custom"
)

// Numeric returns a plain numeric price.
func Numeric(amount float64) Price {
	return Price{Kind: PriceNumeric, Amount: amount}
}

// Free returns the free-pricing sentinel.
func Free() Price {
	return Price{Kind: PriceFree}
}

// Custom returns the quote-based pricing sentinel.
func Custom() Price {
	return Price{Kind: PriceCustom}
}

// Labeled returns a numeric price that keeps its formatted source
// string for display, e.g. Labeled("$49/month") -> 49.
func Labeled(label string) Price {
	return Price{Kind: PriceNumeric, Amount: parseAmount(label), Label: label}
}

// ParsePrice normalizes a raw catalog price representation.
// Sentinels and empty input map to their kinds; anything else is
// parsed as a numeric amount, falling back to zero when no number
// can be extracted. The fallback is intentionally lossy: a broken
// price degrades to a zero contribution instead of failing.
func ParsePrice(raw string) Price {
	switch raw {
	case "":
		return Numeric(0)
	case freeSentinel:
		return Free()
	case customSentinel:
		return Custom()
	}
	if amount, err := strconv.ParseFloat(raw, 64); err == nil {
		return Numeric(amount)
	}
	return Labeled(raw)
}

// parseAmount strips every character that is not a digit or '.' and
// parses the remainder. Unparsable input yields zero.
func parseAmount(s string) float64 {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return amount
}

// Value returns the numeric contribution of the price to cart totals.
// Sentinel prices contribute zero.
func (p Price) Value() float64 {
	if p.Kind == PriceNumeric {
		return p.Amount
	}
	return 0
}

// IsSentinel reports whether the price is a non-numeric marker.
func (p Price) IsSentinel() bool {
	return p.Kind == PriceFree || p.Kind == PriceCustom
}

// String returns the display form of the price.
func (p Price) String() string {
	switch p.Kind {
	case PriceFree:
		return freeSentinel
	case PriceCustom:
		return customSentinel
	}
	if p.Label != "" {
		return p.Label
	}
	return strconv.FormatFloat(p.Amount, 'f', -1, 64)
}

// MarshalJSON serializes the price in its original catalog shape:
// sentinels as their strings, labeled prices as the label, plain
// numeric prices as a JSON number. Round-tripping through
// UnmarshalJSON yields an equal Price.
func (p Price) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PriceFree:
		return json.Marshal(freeSentinel)
	case PriceCustom:
		return json.Marshal(customSentinel)
	}
	if p.Label != "" {
		return json.Marshal(p.Label)
	}
	return json.Marshal(p.Amount)
}

// UnmarshalJSON accepts a number, a sentinel string, a formatted
// string, or null. Anything malformed degrades to a zero numeric
// price rather than returning an error.
func (p *Price) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Numeric(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ParsePrice(s)
		return nil
	}
	*p = Numeric(0)
	return nil
}
