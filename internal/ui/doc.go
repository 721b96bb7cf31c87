// Package ui provides terminal output helpers for spiplot.
//
// Printer writes rendered waveform lines with blank separator lines between
// channel groups. ResolveProfile maps the --color mode to a termenv profile,
// checking whether stdout is a terminal and honoring NO_COLOR, and applies it
// to Lip Gloss so headers and status lines follow the same setting.
//
// Colors are ANSI palette indexes for broad terminal compatibility:
//
//	ColorSuccess (green) - verification passed
//	ColorError   (red)   - verification failed
//	ColorInfo    (cyan)  - header title
//	ColorMuted   (gray)  - header details
package ui
