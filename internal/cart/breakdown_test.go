package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syntriq/cart-service/internal/domain/model"
)

func lineItem(id string, unitPrice float64, quantity int) model.LineItem {
	return model.LineItem{
		Product:  model.Product{ID: id, BasePrice: model.Numeric(unitPrice)},
		Quantity: quantity,
	}
}

func policy(code string, kind model.DiscountType, value float64) *model.DiscountPolicy {
	return &model.DiscountPolicy{Code: code, Type: kind, Value: value}
}

func TestComputeBreakdown(t *testing.T) {
	tests := []struct {
		name   string
		items  []model.LineItem
		policy *model.DiscountPolicy
		want   model.CartBreakdown
	}{
		{
			name:  "empty cart is all zeros",
			items: nil,
			want:  model.CartBreakdown{},
		},
		{
			name:  "single item below threshold",
			items: []model.LineItem{lineItem("p1", 1000, 1)},
			want: model.CartBreakdown{
				Subtotal:      1000,
				TaxableAmount: 1000,
				Tax:           80,
				Shipping:      500,
				Total:         1580,
				ItemCount:     1,
			},
		},
		{
			name:  "quantity multiplies the line total",
			items: []model.LineItem{lineItem("p1", 250, 4)},
			want: model.CartBreakdown{
				Subtotal:      1000,
				TaxableAmount: 1000,
				Tax:           80,
				Shipping:      500,
				Total:         1580,
				ItemCount:     4,
			},
		},
		{
			name:  "just below free shipping threshold",
			items: []model.LineItem{lineItem("p1", 9999, 1)},
			want: model.CartBreakdown{
				Subtotal:      9999,
				TaxableAmount: 9999,
				Tax:           799.92,
				Shipping:      500,
				Total:         11298.92,
				ItemCount:     1,
			},
		},
		{
			name:  "at free shipping threshold",
			items: []model.LineItem{lineItem("p1", 10000, 1)},
			want: model.CartBreakdown{
				Subtotal:      10000,
				TaxableAmount: 10000,
				Tax:           800,
				Shipping:      0,
				Total:         10800,
				ItemCount:     1,
			},
		},
		{
			name:   "percentage discount",
			items:  []model.LineItem{lineItem("p1", 1000, 1)},
			policy: policy("SYNTRIQ10", model.DiscountPercentage, 10),
			want: model.CartBreakdown{
				Subtotal:       1000,
				DiscountAmount: 100,
				TaxableAmount:  900,
				Tax:            72,
				Shipping:       500,
				Total:          1472,
				ItemCount:      1,
			},
		},
		{
			name:   "fixed discount above threshold",
			items:  []model.LineItem{lineItem("p1", 10000, 2)},
			policy: policy("SAVE50", model.DiscountFixed, 50),
			want: model.CartBreakdown{
				Subtotal:       20000,
				DiscountAmount: 50,
				TaxableAmount:  19950,
				Tax:            1596,
				Shipping:       0,
				Total:          21546,
				ItemCount:      2,
			},
		},
		{
			name:   "fixed discount clamps to subtotal",
			items:  []model.LineItem{lineItem("p1", 30, 1)},
			policy: policy("SAVE50", model.DiscountFixed, 50),
			want: model.CartBreakdown{
				Subtotal:       30,
				DiscountAmount: 30,
				TaxableAmount:  0,
				Tax:            0,
				Shipping:       500,
				Total:          500,
				ItemCount:      1,
			},
		},
		{
			name:   "free shipping policy waives the flat fee",
			items:  []model.LineItem{lineItem("p1", 1000, 1)},
			policy: policy("FREESHIP", model.DiscountFreeShipping, 0),
			want: model.CartBreakdown{
				Subtotal:      1000,
				TaxableAmount: 1000,
				Tax:           80,
				Shipping:      0,
				Total:         1080,
				ItemCount:     1,
			},
		},
		{
			name:   "discount never charges shipping on an empty cart",
			items:  nil,
			policy: policy("SAVE50", model.DiscountFixed, 50),
			want:   model.CartBreakdown{},
		},
		{
			name: "sentinel prices contribute zero",
			items: []model.LineItem{
				{Product: model.Product{ID: "p1", BasePrice: model.Free()}, Quantity: 2},
				{Product: model.Product{ID: "p2", BasePrice: model.Custom()}, Quantity: 1},
				lineItem("p3", 100, 1),
			},
			want: model.CartBreakdown{
				Subtotal:      100,
				TaxableAmount: 100,
				Tax:           8,
				Shipping:      500,
				Total:         608,
				ItemCount:     4,
			},
		},
		{
			name: "variant price overrides base price",
			items: []model.LineItem{
				{
					Product:  model.Product{ID: "p1", BasePrice: model.Numeric(1000)},
					Variant:  &model.Variant{Name: "Pro", Price: model.Numeric(2500)},
					Quantity: 1,
				},
			},
			want: model.CartBreakdown{
				Subtotal:      2500,
				TaxableAmount: 2500,
				Tax:           200,
				Shipping:      500,
				Total:         3200,
				ItemCount:     1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBreakdown(tt.items, tt.policy)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeBreakdown_IsPure(t *testing.T) {
	items := []model.LineItem{lineItem("p1", 1234.56, 3)}
	discount := policy("SYNTRIQ10", model.DiscountPercentage, 10)

	first := ComputeBreakdown(items, discount)
	second := ComputeBreakdown(items, discount)

	assert.Equal(t, first, second)
	assert.Equal(t, 3, items[0].Quantity, "inputs must not be mutated")
}
