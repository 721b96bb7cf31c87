package waveform

import "fmt"

// Glyph is the top, middle and bottom character of one waveform column.
type Glyph [3]string

// Box-drawing characters used by the waveform.
const (
	GlyphHorizontal = "━"
	GlyphVertical   = "┃"
	GlyphDownRight  = "┏"
	GlyphDownLeft   = "┓"
	GlyphUpRight    = "┗"
	GlyphUpLeft     = "┛"
	GlyphBlank      = " "
)

var glyphs = map[Transition]Glyph{
	{Low, Low}:   {GlyphBlank, GlyphBlank, GlyphHorizontal},
	{Low, High}:  {GlyphDownRight, GlyphVertical, GlyphUpLeft},
	{High, High}: {GlyphHorizontal, GlyphBlank, "-"},
	{High, Low}:  {GlyphDownLeft, GlyphVertical, GlyphUpRight},
}

// GlyphFor returns the glyph triple for t. Only the four transitions between
// Low and High exist; anything else means the encoder is broken, so it
// panics instead of drawing a column that would shift every channel.
func GlyphFor(t Transition) Glyph {
	g, ok := glyphs[t]
	if !ok {
		panic(fmt.Sprintf("waveform: no glyph for transition %s", t))
	}
	return g
}
