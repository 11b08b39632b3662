// Package lsp demonstrates the Liskov Substitution Principle with flight
// behavior. Penguin substitutes for Sparrow anywhere a Flyer is expected:
// it answers honestly instead of panicking or forcing callers to type-check.
package lsp

import (
	"fmt"
	"io"
)

// Flyer reports a bird's flight ability.
type Flyer interface {
	FlightAbility() string
}

// Sparrow is the default variant.
type Sparrow struct{}

// FlightAbility implements Flyer.
func (Sparrow) FlightAbility() string {
	return "can fly"
}

// Penguin is the substitutable variant. It honors the Flyer contract without
// pretending to fly.
type Penguin struct{}

// FlightAbility implements Flyer.
func (Penguin) FlightAbility() string {
	return "cannot fly; swims instead"
}

// Describe writes f's flight ability to w. It works identically for every
// Flyer; no branching on the concrete variant.
func Describe(f Flyer, w io.Writer) {
	fmt.Fprintf(w, "this bird %s\n", f.FlightAbility())
}
