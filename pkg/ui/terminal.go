// Package ui provides the launcher's console output: coloured status lines,
// the startup countdown bar and the acknowledgment prompt.
package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

