package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParsePrice tests normalization of raw catalog price strings.
func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantKind PriceKind
		wantVal  float64
	}{
		{name: "free sentinel", raw: "Free", wantKind: PriceFree, wantVal: 0},
		{name: "custom sentinel", raw: "Custom", wantKind: PriceCustom, wantVal: 0},
		{name: "empty string", raw: "", wantKind: PriceNumeric, wantVal: 0},
		{name: "plain number", raw: "12999", wantKind: PriceNumeric, wantVal: 12999},
		{name: "decimal number", raw: "49.99", wantKind: PriceNumeric, wantVal: 49.99},
		{name: "currency with suffix", raw: "$49/month", wantKind: PriceNumeric, wantVal: 49},
		{name: "currency with separators", raw: "$12,999", wantKind: PriceNumeric, wantVal: 12999},
		{name: "no digits at all", raw: "contact sales", wantKind: PriceNumeric, wantVal: 0},
		{name: "lowercase free is not a sentinel", raw: "free", wantKind: PriceNumeric, wantVal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ParsePrice(tt.raw)
			assert.Equal(t, tt.wantKind, p.Kind)
			assert.Equal(t, tt.wantVal, p.Value())
		})
	}
}

func TestPrice_Value(t *testing.T) {
	assert.Equal(t, 1000.0, Numeric(1000).Value())
	assert.Zero(t, Free().Value())
	assert.Zero(t, Custom().Value())
	assert.Equal(t, 49.0, Labeled("$49/month").Value())
}

func TestPrice_String(t *testing.T) {
	assert.Equal(t, "Free", Free().String())
	assert.Equal(t, "Custom", Custom().String())
	assert.Equal(t, "$49/month", Labeled("$49/month").String())
	assert.Equal(t, "12999", Numeric(12999).String())
}

// TestPrice_JSONRoundTrip verifies that prices survive serialization
// in their original catalog shape.
func TestPrice_JSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		price Price
		want  string
	}{
		{name: "numeric", price: Numeric(12999), want: `12999`},
		{name: "free", price: Free(), want: `"Free"`},
		{name: "custom", price: Custom(), want: `"Custom"`},
		{name: "labeled", price: Labeled("$49/month"), want: `"$49/month"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.price)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back Price
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.price, back)
		})
	}
}

func TestPrice_UnmarshalMalformed(t *testing.T) {
	var p Price
	require.NoError(t, json.Unmarshal([]byte(`{"weird": true}`), &p))
	assert.Equal(t, PriceNumeric, p.Kind)
	assert.Zero(t, p.Value())

	require.NoError(t, json.Unmarshal([]byte(`null`), &p))
	assert.Zero(t, p.Value())
}
