package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes human-readable status lines. Colour is only emitted when the
// destination is a terminal.
type Printer struct {
	out     io.Writer
	success *color.Color
	warn    *color.Color
	fail    *color.Color
	muted   *color.Color
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	p := &Printer{
		out:     w,
		success: color.New(color.FgGreen, color.Bold),
		warn:    color.New(color.FgYellow),
		fail:    color.New(color.FgRed, color.Bold),
		muted:   color.New(color.Faint),
	}
	colour := IsTerminal(w)
	for _, c := range []*color.Color{p.success, p.warn, p.fail, p.muted} {
		if colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Writer returns the underlying destination.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Info prints a plain status line.
func (p *Printer) Info(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

// Success prints a highlighted status line.
func (p *Printer) Success(format string, a ...any) {
	p.success.Fprintf(p.out, format+"\n", a...)
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, a ...any) {
	p.warn.Fprintf(p.out, format+"\n", a...)
}

// Error prints an error line.
func (p *Printer) Error(format string, a ...any) {
	p.fail.Fprintf(p.out, format+"\n", a...)
}

// Hint prints a de-emphasised line.
func (p *Printer) Hint(format string, a ...any) {
	p.muted.Fprintf(p.out, format+"\n", a...)
}

// Blank prints an empty line.
func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}
