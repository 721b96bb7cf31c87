package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/spiplot/internal/config"
	"github.com/rileyhilliard/spiplot/internal/logger"
	"github.com/rileyhilliard/spiplot/internal/ui"
	"github.com/rileyhilliard/spiplot/internal/waveform"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var log = logger.NewEnvLogger("[render]")

func newRenderCmd(root *rootOptions) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw a transfer",
		Long: `Draw the SCLK, MOSI and MISO lines of a transfer.

MOSI and MISO must carry the same number of bytes: every clocked byte
shifts one byte out and one byte in. Options not given on the command line
come from .spiplot.yaml (see 'spiplot init') or SPIPLOT_* variables.

Examples:
  spiplot render --mosi A5 --miso 00
  spiplot render --mosi "0x9F 00 00" --miso "ff c2 20" --show-bytes
  spiplot render --mosi 55 --miso aa --data-pullup=false --verify`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderCommand(cmd.OutOrStdout(), cmd.Flags(), root, flags)
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

// renderCommand loads config, applies flags, and prints the plot to out.
func renderCommand(out io.Writer, fs *pflag.FlagSet, root *rootOptions, flags *renderFlags) error {
	cfg, err := config.LoadOrDefault(root.configPath)
	if err != nil {
		return err
	}
	flags.apply(fs, cfg)
	cfg.Output.Color = root.colorMode(cfg.Output.Color)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	mosi, err := ParseBytes(flags.mosi)
	if err != nil {
		return err
	}
	miso, err := ParseBytes(flags.miso)
	if err != nil {
		return err
	}

	plot, err := waveform.Build(mosi, miso, cfg.Plot)
	if err != nil {
		return err
	}
	if flags.verify {
		if err := plot.Verify(mosi, miso); err != nil {
			return err
		}
	}

	profile := ui.ResolveProfile(cfg.Output.Color, out)
	log.Debug("rendering %d bytes, color mode %s, profile %d", len(mosi), cfg.Output.Color, profile)

	if cfg.Output.Header && !root.quiet {
		header := ui.RenderHeader(ui.HeaderInfo{
			Bytes:     len(mosi),
			ClockHigh: cfg.Plot.ClkPullup,
			DataHigh:  cfg.Plot.DataPullup,
		})
		if _, err := fmt.Fprintf(out, "%s\n\n", header); err != nil {
			return err
		}
	}

	channels := plot.Channels()
	groups := make([][]string, len(channels))
	for i, ch := range channels {
		groups[i] = ch.Lines(profile)
	}
	if err := ui.NewPrinter(out).PrintGroups(groups, cfg.Output.Separator); err != nil {
		return err
	}

	if flags.verify {
		_, err := fmt.Fprintln(out, ui.RenderStatus(true, "decoded bits match the input"))
		return err
	}
	return nil
}
