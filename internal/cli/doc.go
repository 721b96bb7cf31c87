// Package cli implements the spiplot command-line interface.
//
// Commands are built by constructor functions (newRootCmd, newRenderCmd, ...)
// so tests can create isolated command trees; the package-level rootCmd is
// the one Execute runs.
//
// # Command Structure
//
//	spiplot render        - Draw a transfer
//	spiplot init          - Create .spiplot.yaml
//	spiplot version       - Print build information
//	spiplot completion    - Shell completion scripts
//
// # Option Precedence
//
// Rendering options come from, lowest to highest:
//
//  1. Built-in defaults (waveform.DefaultConfig)
//  2. The config file found by config.Find
//  3. SPIPLOT_* environment variables
//  4. Flags given on the command line
//
// Only flags the user actually set override lower layers; unset flags keep
// the config value even though they have defaults of their own.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --quiet, --color, --no-color) are
// persistent flags on the root command. --no-color wins over --color.
package cli
