package lsp

import "io"

// Demo describes both variants through the same Flyer-typed code path.
func Demo(w io.Writer) {
	for _, bird := range []Flyer{Sparrow{}, Penguin{}} {
		Describe(bird, w)
	}
}
