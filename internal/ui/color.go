package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// isTerminal reports whether w is attached to a terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a lipgloss renderer for w, or nil when output should
// stay plain. In auto mode styling requires a terminal and an unset NO_COLOR.
func NewRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	switch mode {
	case ColorNever:
		return nil
	case ColorAlways:
		r := lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.ANSI256)
		return r
	default:
		if os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
			return nil
		}
		return lipgloss.NewRenderer(w)
	}
}
