package waveform

import (
	"strings"

	"github.com/muesli/termenv"
)

var boxGlyphs = map[rune]bool{
	'━': true,
	'┃': true,
	'┏': true,
	'┓': true,
	'┗': true,
	'┛': true,
}

// IsBoxGlyph reports whether r is one of the waveform's box-drawing
// characters.
func IsBoxGlyph(r rune) bool {
	return boxGlyphs[r]
}

// Colorize returns copies of rows with every box-drawing glyph wrapped in a
// foreground color escape for the 256-color palette index color. The profile
// decides the escape form; termenv.Ascii leaves the rows untouched. Rows must
// already be aligned: the result is for printing only.
func Colorize(rows []string, color int, profile termenv.Profile) []string {
	out := make([]string, len(rows))
	style := profile.String().Foreground(profile.Convert(termenv.ANSI256Color(color)))
	for i, row := range rows {
		var b strings.Builder
		for _, r := range row {
			if !boxGlyphs[r] {
				b.WriteRune(r)
				continue
			}
			b.WriteString(style.Styled(string(r)))
		}
		out[i] = b.String()
	}
	return out
}
