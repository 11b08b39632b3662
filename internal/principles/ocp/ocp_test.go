package ocp

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func products(prices ...string) []Product {
	out := make([]Product, len(prices))
	for i, p := range prices {
		out[i] = Product{Name: "item", Price: decimal.RequireFromString(p)}
	}
	return out
}

func TestOrder_CalculateTotal(t *testing.T) {
	tests := []struct {
		name   string
		prices []string
		want   string
	}{
		{"empty order sums to zero", nil, "0"},
		{"single item", []string{"19.99"}, "19.99"},
		{"two items", []string{"10.50", "4.25"}, "14.75"},
		{"many items", []string{"1", "2", "3", "4", "5"}, "15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewOrder(products(tt.prices...)...).CalculateTotal()
			want := decimal.RequireFromString(tt.want)
			assert.True(t, got.Equal(want), "expected %s, got %s", want, got)
		})
	}
}

func TestDiscountedOrder_CalculateTotal(t *testing.T) {
	tests := []struct {
		name     string
		prices   []string
		discount string
		want     string
	}{
		{"zero discount reproduces base total", []string{"10", "20"}, "0", "30"},
		{"ten percent", []string{"100"}, "10", "90"},
		{"fractional discount", []string{"200"}, "12.5", "175"},
		{"full discount yields zero", []string{"33.33", "66.67"}, "100", "0"},
		{"discount above 100 goes negative", []string{"100"}, "150", "-50"},
		{"negative discount adds a surcharge", []string{"100"}, "-10", "110"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.discount)
			got := NewDiscountedOrder(d, products(tt.prices...)...).CalculateTotal()
			want := decimal.RequireFromString(tt.want)
			assert.True(t, got.Equal(want), "expected %s, got %s", want, got)
		})
	}
}

// Both order variants must be usable wherever a PriceCalculator is expected.
func TestBothVariantsSatisfyPriceCalculator(t *testing.T) {
	items := products("40", "60")

	var calc PriceCalculator = NewOrder(items...)
	assert.True(t, calc.CalculateTotal().Equal(decimal.NewFromInt(100)))

	calc = NewDiscountedOrder(decimal.NewFromInt(25), items...)
	assert.True(t, calc.CalculateTotal().Equal(decimal.NewFromInt(75)))
}

func TestDiscountedOrder_BaseBehaviorUnchanged(t *testing.T) {
	items := products("12.34", "56.66")

	base := NewOrder(items...).CalculateTotal()
	discounted := NewDiscountedOrder(decimal.Zero, items...)

	// The embedded base computation is untouched by the extension.
	assert.True(t, discounted.Order.CalculateTotal().Equal(base))
	assert.True(t, discounted.CalculateTotal().Equal(base))
}

func TestDemo_Output(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)

	out := buf.String()
	require.Contains(t, out, "plain order: total 110")
	require.Contains(t, out, "order with 10% off: total 99")
}
