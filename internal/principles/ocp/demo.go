package ocp

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Demo prices the same basket plain and with a 10% discount, through the
// PriceCalculator contract both times.
func Demo(w io.Writer) {
	basket := []Product{
		{Name: "keyboard", Price: decimal.RequireFromString("79.90")},
		{Name: "mouse", Price: decimal.RequireFromString("25.10")},
		{Name: "cable", Price: decimal.RequireFromString("5.00")},
	}

	printTotal := func(label string, calc PriceCalculator) {
		fmt.Fprintf(w, "%s: total %s\n", label, calc.CalculateTotal())
	}

	printTotal("plain order", NewOrder(basket...))
	printTotal("order with 10% off", NewDiscountedOrder(decimal.NewFromInt(10), basket...))
}
