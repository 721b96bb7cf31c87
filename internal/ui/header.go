package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/spiplot/internal/util"
)

// HeaderInfo describes the transfer shown above a plot.
type HeaderInfo struct {
	Bytes     int
	ClockHigh bool // clock idles high
	DataHigh  bool // data lines idle high
}

func idleName(high bool) string {
	if high {
		return "high"
	}
	return "low"
}

// RenderHeader renders a one-line summary of the transfer.
func RenderHeader(info HeaderInfo) string {
	titleStyle := lipgloss.NewStyle().Foreground(ColorInfo).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	parts := []string{
		fmt.Sprintf("%d %s", info.Bytes, util.Pluralize(info.Bytes, "byte", "bytes")),
		"clock idle " + idleName(info.ClockHigh),
		"data idle " + idleName(info.DataHigh),
	}
	return titleStyle.Render("SPI transfer") + "  " + mutedStyle.Render(strings.Join(parts, "  "))
}

// RenderStatus renders a success or failure line with its symbol.
func RenderStatus(ok bool, message string) string {
	if ok {
		return lipgloss.NewStyle().Foreground(ColorSuccess).Render(SymbolSuccess) + " " + message
	}
	return lipgloss.NewStyle().Foreground(ColorError).Render(SymbolFail) + " " + message
}
