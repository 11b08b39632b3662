// Package ocp demonstrates the Open/Closed Principle with order totals.
// DiscountedOrder extends Order's pricing without touching Order's code:
// both satisfy PriceCalculator, and the discounted variant reuses the base
// computation through an embedded Order value.
package ocp

import "github.com/shopspring/decimal"

// Product is a line item: a name and a price. Immutable by convention.
type Product struct {
	Name  string
	Price decimal.Decimal
}

// PriceCalculator is the contract client code depends on. Anything that can
// price itself can stand in for an order.
type PriceCalculator interface {
	CalculateTotal() decimal.Decimal
}

// Order holds an ordered sequence of products.
type Order struct {
	products []Product
}

// NewOrder creates an order over the given products.
func NewOrder(products ...Product) *Order {
	return &Order{products: products}
}

// Products returns the order's line items in insertion order.
func (o *Order) Products() []Product {
	return o.products
}

// CalculateTotal sums all product prices, starting from zero.
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.products {
		total = total.Add(p.Price)
	}
	return total
}

// DiscountedOrder prices like an Order, then takes a percentage off.
// The discount is not range-checked; values outside [0,100] apply as-is.
type DiscountedOrder struct {
	Order
	discountPercent decimal.Decimal
}

// NewDiscountedOrder creates an order that discounts its total by
// discountPercent percent.
func NewDiscountedOrder(discountPercent decimal.Decimal, products ...Product) *DiscountedOrder {
	return &DiscountedOrder{
		Order:           Order{products: products},
		discountPercent: discountPercent,
	}
}

// CalculateTotal computes the base total via the embedded Order, then
// subtracts base × (discount / 100).
func (o *DiscountedOrder) CalculateTotal() decimal.Decimal {
	base := o.Order.CalculateTotal()
	discount := base.Mul(o.discountPercent).Div(decimal.NewFromInt(100))
	return base.Sub(discount)
}
