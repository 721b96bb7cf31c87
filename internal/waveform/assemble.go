package waveform

import (
	"strings"
	"unicode/utf8"
)

// Waveform holds the top, middle and bottom rows of a channel. All three rows
// have the same number of runes.
type Waveform [3]string

// Width returns the column count of the waveform.
func (w Waveform) Width() int {
	return utf8.RuneCountInString(w[0])
}

// Rows returns the rows as a fresh slice.
func (w Waveform) Rows() []string {
	return []string{w[0], w[1], w[2]}
}

// Channel labels. Each is one column group wide so the waveforms that follow
// start at the same column.
const (
	LabelClock = "SCLK "
	LabelMOSI  = "MOSI "
	LabelMISO  = "MISO "
)

// labelWidth is the rune width of every channel label.
const labelWidth = 5

// Assemble draws ts as a waveform, one column per transition.
func Assemble(ts []Transition) Waveform {
	var rows [3]strings.Builder
	for i := range rows {
		rows[i].Grow(len(ts) * utf8.UTFMax)
	}
	for _, t := range ts {
		g := GlyphFor(t)
		for i := range rows {
			rows[i].WriteString(g[i])
		}
	}
	return Waveform{rows[0].String(), rows[1].String(), rows[2].String()}
}

// Combine concatenates waveforms column-wise, row for row.
func Combine(ws ...Waveform) Waveform {
	var out Waveform
	for i := range out {
		var b strings.Builder
		for _, w := range ws {
			b.WriteString(w[i])
		}
		out[i] = b.String()
	}
	return out
}

// Label returns the label column for a channel, with the name on the middle
// row.
func Label(name string) Waveform {
	blank := strings.Repeat(" ", labelWidth)
	return Waveform{blank, name, blank}
}

// clockByte is the clock pattern for one byte: eight pulses, then the clock
// rests low through the inter-byte gap.
func clockByte(delayCycles int) []Transition {
	delayCycles = max(delayCycles, 0)
	ts := make([]Transition, 0, 16+1+2*delayCycles)
	for i := 0; i < 8; i++ {
		ts = append(ts, Transition{Low, High}, Transition{High, Low})
	}
	return append(ts, Idle(Low, 1+2*delayCycles)...)
}

// ClockWaveform draws the clock for a transfer of n bytes.
func ClockWaveform(n int, cfg Config) Waveform {
	ts := Idle(cfg.clockIdle(), cfg.PrefixCycles)
	pattern := clockByte(cfg.DelayCycles)
	for i := 0; i < n; i++ {
		ts = append(ts, pattern...)
	}
	return Assemble(ts)
}

// DataWaveform draws a data line carrying data.
func DataWaveform(data []byte, cfg Config) Waveform {
	idle := cfg.dataIdle()
	ts := Idle(idle, cfg.PrefixCycles)
	for _, b := range data {
		ts = append(ts, EncodeByte(b, idle)...)
		ts = append(ts, Idle(idle, 2*cfg.DelayCycles)...)
	}
	return Assemble(ts)
}
