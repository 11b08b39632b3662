package isp

import "io"

// Demo drives each device through only the contracts it implements.
func Demo(w io.Writer) {
	inkjet := NewInkjetPrinter(w)
	flatbed := NewFlatbedScanner(w)
	combo := NewMultiFunctionMachine(w)

	PrintAll(inkjet, combo)
	ScanAll(flatbed, combo)
}
