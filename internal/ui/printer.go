package ui

import (
	"fmt"
	"io"
)

// Printer writes rendered lines to a terminal or any other writer.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes each line followed by a newline, then extra blank lines.
func (p *Printer) Print(lines []string, extra int) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.w, l); err != nil {
			return err
		}
	}
	for i := 0; i < extra; i++ {
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	return nil
}

// PrintGroups prints every group followed by extra blank lines.
func (p *Printer) PrintGroups(groups [][]string, extra int) error {
	for _, g := range groups {
		if err := p.Print(g, extra); err != nil {
			return err
		}
	}
	return nil
}
