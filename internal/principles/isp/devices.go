// Package isp demonstrates the Interface Segregation Principle with office
// devices. Printing and scanning are independent single-method contracts;
// no device implements a capability it doesn't have, and the multifunction
// machine picks up both by satisfying both.
package isp

import (
	"fmt"
	"io"
)

// Printer is the print capability.
type Printer interface {
	PrintDocument()
}

// Scanner is the scan capability.
type Scanner interface {
	ScanDocument()
}

// InkjetPrinter prints and nothing else.
type InkjetPrinter struct {
	out io.Writer
}

// NewInkjetPrinter creates a printer that reports its work on out.
func NewInkjetPrinter(out io.Writer) *InkjetPrinter {
	return &InkjetPrinter{out: out}
}

// PrintDocument implements Printer.
func (p *InkjetPrinter) PrintDocument() {
	fmt.Fprintln(p.out, "inkjet: printing document")
}

// FlatbedScanner scans and nothing else.
type FlatbedScanner struct {
	out io.Writer
}

// NewFlatbedScanner creates a scanner that reports its work on out.
func NewFlatbedScanner(out io.Writer) *FlatbedScanner {
	return &FlatbedScanner{out: out}
}

// ScanDocument implements Scanner.
func (s *FlatbedScanner) ScanDocument() {
	fmt.Fprintln(s.out, "flatbed: scanning document")
}

// MultiFunctionMachine does both, by implementing both contracts.
type MultiFunctionMachine struct {
	out io.Writer
}

// NewMultiFunctionMachine creates a combined printer/scanner.
func NewMultiFunctionMachine(out io.Writer) *MultiFunctionMachine {
	return &MultiFunctionMachine{out: out}
}

// PrintDocument implements Printer.
func (m *MultiFunctionMachine) PrintDocument() {
	fmt.Fprintln(m.out, "multifunction: printing document")
}

// ScanDocument implements Scanner.
func (m *MultiFunctionMachine) ScanDocument() {
	fmt.Fprintln(m.out, "multifunction: scanning document")
}

// PrintAll runs a print job on every printer. It depends on the print
// contract alone; scanners never enter the picture.
func PrintAll(printers ...Printer) {
	for _, p := range printers {
		p.PrintDocument()
	}
}

// ScanAll runs a scan job on every scanner.
func ScanAll(scanners ...Scanner) {
	for _, s := range scanners {
		s.ScanDocument()
	}
}
