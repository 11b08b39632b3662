// Package catalog is the registry of principle examples. It owns the tour
// order (S, O, L, I, D), the prose shown alongside each demo, and lookup by
// slug, so the CLI and server never hardcode the example set.
package catalog

import (
	"fmt"
	"io"
	"strings"

	"github.com/olehluchkiv/gosolid/internal/principles/dip"
	"github.com/olehluchkiv/gosolid/internal/principles/isp"
	"github.com/olehluchkiv/gosolid/internal/principles/lsp"
	"github.com/olehluchkiv/gosolid/internal/principles/ocp"
	"github.com/olehluchkiv/gosolid/internal/principles/srp"
)

// Example is one entry in the tour.
type Example struct {
	Slug       string // stable identifier, e.g. "srp"
	Letter     string // principle letter, e.g. "S"
	Title      string
	Definition string            // one-line statement of the principle
	Summary    string            // what the demo shows
	PkgPath    string            // package holding the example's types
	Run        func(w io.Writer) // writes the demo output
}

var examples = []Example{
	{
		Slug:       "srp",
		Letter:     "S",
		Title:      "Single Responsibility",
		Definition: "A type should have one reason to change.",
		Summary: "A bank account modeled twice: one type doing storage, " +
			"transactions and reporting, then the same behavior split into a " +
			"data holder and a transaction handler. The arithmetic is identical.",
		PkgPath: "github.com/olehluchkiv/gosolid/internal/principles/srp",
		Run:     srp.Demo,
	},
	{
		Slug:       "ocp",
		Letter:     "O",
		Title:      "Open/Closed",
		Definition: "Open for extension, closed for modification.",
		Summary: "Order totals priced through a PriceCalculator contract. " +
			"DiscountedOrder extends pricing without touching Order's code; a " +
			"zero discount reproduces the base total exactly.",
		PkgPath: "github.com/olehluchkiv/gosolid/internal/principles/ocp",
		Run:     ocp.Demo,
	},
	{
		Slug:       "lsp",
		Letter:     "L",
		Title:      "Liskov Substitution",
		Definition: "Subtypes must be usable wherever their contract is expected.",
		Summary: "A Penguin stands in for a Sparrow anywhere a Flyer is " +
			"wanted. Callers never type-check; the penguin answers honestly " +
			"instead of breaking.",
		PkgPath: "github.com/olehluchkiv/gosolid/internal/principles/lsp",
		Run:     lsp.Demo,
	},
	{
		Slug:       "isp",
		Letter:     "I",
		Title:      "Interface Segregation",
		Definition: "No client should depend on methods it does not use.",
		Summary: "Printing and scanning as independent single-method " +
			"contracts. A printer-only device cannot be asked to scan; the " +
			"multifunction machine satisfies both contracts by composition.",
		PkgPath: "github.com/olehluchkiv/gosolid/internal/principles/isp",
		Run:     isp.Demo,
	},
	{
		Slug:       "dip",
		Letter:     "D",
		Title:      "Dependency Inversion",
		Definition: "High-level policy depends on abstractions, not concrete mechanisms.",
		Summary: "A notifier that owns two concrete senders and branches on a " +
			"flag, versus one constructed around a MessageService. Swapping " +
			"email for SMS changes zero notifier code.",
		PkgPath: "github.com/olehluchkiv/gosolid/internal/principles/dip",
		Run:     dip.Demo,
	},
}

// All returns the examples in documentation order: S, O, L, I, D.
func All() []Example {
	out := make([]Example, len(examples))
	copy(out, examples)
	return out
}

// Find returns the example with the given slug (case-insensitive).
func Find(slug string) (Example, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, ex := range examples {
		if ex.Slug == slug || strings.ToLower(ex.Letter) == slug {
			return ex, nil
		}
	}
	return Example{}, fmt.Errorf("unknown principle %q (valid: %s)", slug, strings.Join(Slugs(), ", "))
}

// Slugs returns all example slugs in tour order.
func Slugs() []string {
	out := make([]string, len(examples))
	for i, ex := range examples {
		out[i] = ex.Slug
	}
	return out
}

// CaptureOutput runs an example's demo and returns what it wrote.
func CaptureOutput(ex Example) string {
	var b strings.Builder
	ex.Run(&b)
	return b.String()
}
