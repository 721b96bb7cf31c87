package waveform

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rileyhilliard/spiplot/internal/errors"
)

// Channel is a labelled waveform plus the annotation rows printed under it.
type Channel struct {
	Name  string
	Rows  Waveform
	Extra []string
	Color int
}

// Lines returns the printable rows of the channel, colored for profile.
// Annotation rows contain no box glyphs and pass through unchanged.
func (c Channel) Lines(profile termenv.Profile) []string {
	rows := append(c.Rows.Rows(), c.Extra...)
	return Colorize(rows, c.Color, profile)
}

// Plot is a fully assembled transfer. Rows are plain; coloring happens when
// lines are produced.
type Plot struct {
	Clock Channel
	MOSI  Channel
	MISO  Channel
}

// Channels returns the channels in print order.
func (p Plot) Channels() []Channel {
	return []Channel{p.Clock, p.MOSI, p.MISO}
}

// Build assembles the three channels and their annotation rows. MOSI and MISO
// must have the same length; otherwise nothing is rendered.
func Build(mosi, miso []byte, cfg Config) (Plot, error) {
	if len(mosi) != len(miso) {
		return Plot{}, errors.New(errors.ErrInput,
			fmt.Sprintf("MOSI & MISO lengths don't match (%d vs %d bytes)", len(mosi), len(miso)),
			"Every clocked byte shifts one byte each way, so pass the same number of bytes for both lines.")
	}

	clock := Combine(Label(LabelClock), ClockWaveform(len(mosi), cfg))
	plot := Plot{
		Clock: Channel{Name: LabelClock, Rows: clock, Color: cfg.ClkColor},
		MOSI:  dataChannel(LabelMOSI, mosi, clock, cfg, cfg.MOSIColor),
		MISO:  dataChannel(LabelMISO, miso, clock, cfg, cfg.MISOColor),
	}
	return plot, nil
}

func dataChannel(name string, data []byte, clock Waveform, cfg Config, color int) Channel {
	rows := Combine(Label(name), DataWaveform(data, cfg))
	ch := Channel{Name: name, Rows: rows, Color: color}
	if cfg.ShowBits {
		ch.Extra = append(ch.Extra, AnalyzeEdges(clock[0], rows[0]))
	}
	if cfg.ShowBytes {
		ch.Extra = append(ch.Extra, ByteLabels(data, cfg))
	}
	return ch
}

// RenderGroups renders a transfer as one group of lines per channel, colored
// for profile.
func RenderGroups(mosi, miso []byte, cfg Config, profile termenv.Profile) ([][]string, error) {
	plot, err := Build(mosi, miso, cfg)
	if err != nil {
		return nil, err
	}
	channels := plot.Channels()
	groups := make([][]string, len(channels))
	for i, ch := range channels {
		groups[i] = ch.Lines(profile)
	}
	return groups, nil
}

// Render renders a transfer as 256-color terminal lines: the clock, then
// MOSI and MISO with their annotation rows.
func Render(mosi, miso []byte, cfg Config) ([]string, error) {
	groups, err := RenderGroups(mosi, miso, cfg, termenv.ANSI256)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, g := range groups {
		lines = append(lines, g...)
	}
	return lines, nil
}

// Verify decodes both data channels from the rendered glyphs and checks them
// against the bytes they were drawn from.
func (p Plot) Verify(mosi, miso []byte) error {
	checks := []struct {
		ch   Channel
		data []byte
	}{
		{p.MOSI, mosi},
		{p.MISO, miso},
	}
	for _, c := range checks {
		got := DecodeBits(AnalyzeEdges(p.Clock.Rows[0], c.ch.Rows[0]))
		want := BitString(c.data)
		if got != want {
			return errors.New(errors.ErrRender,
				fmt.Sprintf("%s decoded as %s, expected %s", strings.TrimSpace(c.ch.Name), got, want),
				"The rendered waveform doesn't match its input. Please report this with the bytes you used.")
		}
	}
	return nil
}
