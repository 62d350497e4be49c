package color

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// For mocking in tests
var (
	getenv     = os.Getenv
	isTerminal = IsTerminal
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Enabled reports whether output written to w should be colored.
func Enabled(w io.Writer, noColorFlag bool) bool {
	if noColorFlag {
		return false
	}
	if getenv("FORCE_COLOR") == "1" {
		return true
	}
	if getenv("NO_COLOR") != "" || getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal(w)
}
