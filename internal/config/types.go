package config

import "github.com/rileyhilliard/spiplot/internal/waveform"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .spiplot.yaml configuration file.
type Config struct {
	Version int             `yaml:"version" mapstructure:"version"`
	Plot    waveform.Config `yaml:"plot" mapstructure:"plot"`
	Output  OutputConfig    `yaml:"output" mapstructure:"output"`
}

// OutputConfig controls terminal output formatting.
type OutputConfig struct {
	// Color mode: "auto", "always", or "never".
	// "auto" disables color when output is piped.
	Color string `yaml:"color" mapstructure:"color"`

	// Separator is the number of blank lines printed after each channel.
	Separator int `yaml:"separator" mapstructure:"separator"`

	// Header prints a one-line transfer summary above the plot.
	Header bool `yaml:"header" mapstructure:"header"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Plot:    waveform.DefaultConfig(),
		Output: OutputConfig{
			Color:     "auto",
			Separator: 1,
			Header:    true,
		},
	}
}
