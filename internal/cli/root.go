package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/spiplot/internal/logger"
	"github.com/spf13/cobra"
)

// rootOptions holds the global flags shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
	quiet      bool
	color      string
	noColor    bool
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "spiplot",
		Short: "Draw SPI transfers as terminal waveforms",
		Long: `spiplot draws the clock and data lines of an SPI transfer as a
box-drawing waveform, with the bits decoded from the drawing and optional
per-byte labels.

Examples:
  spiplot render --mosi "A5 00" --miso "12 34"
  spiplot render --mosi deadbeef --miso 00000000 --show-bytes
  spiplot init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(opts.verbose)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default: nearest .spiplot.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logs to stderr")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "skip the header line")
	pf.StringVar(&opts.color, "color", "", "color mode: auto, always, never (default from config)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colors (same as --color never)")

	cmd.AddCommand(newRenderCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd(cmd))

	return cmd
}

// colorMode resolves the color flags against the configured mode.
func (o *rootOptions) colorMode(configured string) string {
	if o.noColor {
		return "never"
	}
	if o.color != "" {
		return o.color
	}
	return configured
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprint(os.Stderr, err.Error())
		os.Exit(1)
	}
}
