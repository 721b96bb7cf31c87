package waveform

// Config controls how a transfer is rendered. It is passed by value so a
// render call never observes changes made by its caller.
type Config struct {
	// ShowBits appends the decoded-bit row under each data channel.
	ShowBits bool `yaml:"show_bits" mapstructure:"show_bits"`

	// ShowBytes appends a hex label row under each data channel.
	ShowBytes bool `yaml:"show_bytes" mapstructure:"show_bytes"`

	// 256-color palette indexes per channel.
	ClkColor  int `yaml:"clk_color" mapstructure:"clk_color"`
	MOSIColor int `yaml:"mosi_color" mapstructure:"mosi_color"`
	MISOColor int `yaml:"miso_color" mapstructure:"miso_color"`

	// PrefixCycles is the number of idle columns drawn before the first byte.
	PrefixCycles int `yaml:"prefix_cycles" mapstructure:"prefix_cycles"`

	// DelayCycles is the idle gap between bytes. Each cycle is two columns.
	DelayCycles int `yaml:"delay_cycles" mapstructure:"delay_cycles"`

	// Idle levels of the clock and data lines.
	ClkPullup  bool `yaml:"clk_pullup" mapstructure:"clk_pullup"`
	DataPullup bool `yaml:"data_pullup" mapstructure:"data_pullup"`

	// CSActiveLow is accepted for compatibility. Chip select is not drawn.
	CSActiveLow bool `yaml:"cs_active_low" mapstructure:"cs_active_low"`
}

// DefaultConfig returns the stock rendering options.
func DefaultConfig() Config {
	return Config{
		ShowBits:     true,
		ShowBytes:    false,
		ClkColor:     2,
		MOSIColor:    3,
		MISOColor:    3,
		PrefixCycles: 2,
		DelayCycles:  2,
		ClkPullup:    false,
		DataPullup:   true,
		CSActiveLow:  true,
	}
}

func (c Config) clockIdle() Level {
	return LevelOf(c.ClkPullup)
}

func (c Config) dataIdle() Level {
	return LevelOf(c.DataPullup)
}
