package config

import (
	stderrors "errors"
	"fmt"
	"slices"

	"github.com/rileyhilliard/spiplot/internal/errors"
	"github.com/rileyhilliard/spiplot/internal/util"
	"github.com/rileyhilliard/spiplot/internal/waveform"
)

// ColorModes lists the accepted output.color values.
var ColorModes = []string{"auto", "always", "never"}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but spiplot only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Upgrade spiplot or lower the version in .spiplot.yaml.")
	}

	if err := ValidatePlot(cfg.Plot); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'plot' section in your .spiplot.yaml.")
	}

	if err := validateOutput(cfg.Output); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "Check the 'output' section in your .spiplot.yaml.")
	}

	return nil
}

// ValidatePlot checks rendering options. Flags are validated with it too, so
// it returns plain errors and leaves the suggestion to the caller.
func ValidatePlot(p waveform.Config) error {
	colors := []struct {
		name  string
		value int
	}{
		{"clk_color", p.ClkColor},
		{"mosi_color", p.MOSIColor},
		{"miso_color", p.MISOColor},
	}
	for _, c := range colors {
		if c.value < 0 || c.value > 255 {
			return fmt.Errorf("%s must be a 256-color palette index (0-255), got %d", c.name, c.value)
		}
	}

	if p.PrefixCycles < 0 {
		return fmt.Errorf("prefix_cycles can't be negative, got %d", p.PrefixCycles)
	}
	if p.DelayCycles < 0 {
		return fmt.Errorf("delay_cycles can't be negative, got %d", p.DelayCycles)
	}
	return nil
}

func validateOutput(o OutputConfig) error {
	if !slices.Contains(ColorModes, o.Color) {
		msg := fmt.Sprintf("output.color must be one of %s, got %q", util.JoinOrDefault(ColorModes, ""), o.Color)
		if similar := util.SuggestSimilar(o.Color, ColorModes, 2); len(similar) > 0 {
			msg += fmt.Sprintf(" (did you mean %q?)", similar[0])
		}
		return stderrors.New(msg)
	}
	if o.Separator < 0 {
		return fmt.Errorf("output.separator can't be negative, got %d", o.Separator)
	}
	return nil
}
