package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by --color and output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorInfo    lipgloss.Color = "6" // Cyan
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// ResolveProfile picks the color profile for output written to w.
//
//	never  -> no escapes
//	always -> 256 colors
//	auto   -> 256 colors on a terminal unless NO_COLOR is set
//
// The chosen profile is also applied to lipgloss so styled text matches the
// waveform.
func ResolveProfile(mode string, w io.Writer) termenv.Profile {
	profile := termenv.Ascii
	switch mode {
	case ColorAlways:
		profile = termenv.ANSI256
	case ColorNever:
	default:
		if isTerminal(w) && !termenv.EnvNoColor() {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
	return profile
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
