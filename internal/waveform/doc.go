// Package waveform renders SPI-style bus transfers as terminal waveform
// diagrams.
//
// A transfer is drawn as three channels (SCLK, MOSI, MISO), each three text
// rows tall. Every column of a channel is one half-bit period and is drawn
// with a fixed glyph triple chosen by the logic transition across that
// period:
//
//	low->low    high->high   low->high   high->low
//	                ━            ┏           ┓
//	                             ┃           ┃
//	    ━           -            ┛           ┗
//
// # Pipeline
//
// Render runs the stages in a fixed order:
//
//  1. EncodeByte turns each byte into 17 transitions (MSB first, each bit
//     held for two half periods, bracketed by the idle level).
//  2. GlyphFor maps every transition to its glyph triple.
//  3. DataWaveform and ClockWaveform assemble the channels, Combine joins
//     them with their label column.
//  4. AnalyzeEdges decodes bits from the plain top rows by sampling the data
//     line at every falling clock edge.
//  5. Colorize wraps box-drawing glyphs in terminal color escapes.
//
// Analysis always runs on plain rows. Once escapes are inserted, rune
// positions no longer line up between channels.
//
// # Decoded bits
//
// The bits row is derived from the rendered glyphs, not from the input
// bytes, so it doubles as a check that encoding and assembly are consistent:
//
//	lines, _ := waveform.Render([]byte{0xA5}, []byte{0x00}, waveform.DefaultConfig())
//	// lines[6] holds "1 0 1 0 0 1 0 1" spread under the falling clock edges
package waveform
