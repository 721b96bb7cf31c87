package cli

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rileyhilliard/spiplot/internal/config"
	"github.com/rileyhilliard/spiplot/internal/errors"
	"github.com/spf13/pflag"
)

// ParseBytes parses a list of hex bytes. Tokens are separated by whitespace
// or commas and may carry a 0x prefix. A token longer than two digits is
// read as a run of bytes ("deadbeef"); a single digit is one byte ("5").
func ParseBytes(s string) ([]byte, error) {
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		digits := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
		if len(digits) == 1 {
			digits = "0" + digits
		}
		if digits == "" || len(digits)%2 != 0 {
			return nil, badBytes(tok, fmt.Errorf("odd number of hex digits"))
		}
		b, err := hex.DecodeString(digits)
		if err != nil {
			return nil, badBytes(tok, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

func badBytes(tok string, cause error) error {
	return errors.WrapWithCode(cause, errors.ErrInput,
		fmt.Sprintf("'%s' isn't a hex byte", tok),
		"Write bytes in hex, like \"A5 0x00 ff\" or \"a500ff\".")
}

// renderFlags holds the per-command flags of 'spiplot render'. Plot options
// only override the config when the flag was set on the command line.
type renderFlags struct {
	mosi   string
	miso   string
	verify bool

	showBits     bool
	showBytes    bool
	clkColor     int
	mosiColor    int
	misoColor    int
	prefixCycles int
	delayCycles  int
	clkPullup    bool
	dataPullup   bool
	csActiveLow  bool
	separator    int
}

func (f *renderFlags) register(fs *pflag.FlagSet) {
	d := config.DefaultConfig()

	fs.StringVar(&f.mosi, "mosi", "", "bytes sent on MOSI, in hex")
	fs.StringVar(&f.miso, "miso", "", "bytes received on MISO, in hex")
	fs.BoolVar(&f.verify, "verify", false, "fail if the decoded bits don't match the input")

	fs.BoolVar(&f.showBits, "show-bits", d.Plot.ShowBits, "show bits decoded at falling clock edges")
	fs.BoolVar(&f.showBytes, "show-bytes", d.Plot.ShowBytes, "show hex labels under each byte")
	fs.IntVar(&f.clkColor, "clk-color", d.Plot.ClkColor, "SCLK color (256-color index)")
	fs.IntVar(&f.mosiColor, "mosi-color", d.Plot.MOSIColor, "MOSI color (256-color index)")
	fs.IntVar(&f.misoColor, "miso-color", d.Plot.MISOColor, "MISO color (256-color index)")
	fs.IntVar(&f.prefixCycles, "prefix-cycles", d.Plot.PrefixCycles, "idle columns before the first byte")
	fs.IntVar(&f.delayCycles, "delay-cycles", d.Plot.DelayCycles, "idle cycles between bytes")
	fs.BoolVar(&f.clkPullup, "clk-pullup", d.Plot.ClkPullup, "clock idles high")
	fs.BoolVar(&f.dataPullup, "data-pullup", d.Plot.DataPullup, "data lines idle high")
	fs.BoolVar(&f.csActiveLow, "cs-active-low", d.Plot.CSActiveLow, "chip select is active low (not drawn)")
	fs.IntVar(&f.separator, "separator", d.Output.Separator, "blank lines after each channel")
}

// apply copies every flag the user set onto cfg.
func (f *renderFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	overrides := map[string]func(){
		"show-bits":     func() { cfg.Plot.ShowBits = f.showBits },
		"show-bytes":    func() { cfg.Plot.ShowBytes = f.showBytes },
		"clk-color":     func() { cfg.Plot.ClkColor = f.clkColor },
		"mosi-color":    func() { cfg.Plot.MOSIColor = f.mosiColor },
		"miso-color":    func() { cfg.Plot.MISOColor = f.misoColor },
		"prefix-cycles": func() { cfg.Plot.PrefixCycles = f.prefixCycles },
		"delay-cycles":  func() { cfg.Plot.DelayCycles = f.delayCycles },
		"clk-pullup":    func() { cfg.Plot.ClkPullup = f.clkPullup },
		"data-pullup":   func() { cfg.Plot.DataPullup = f.dataPullup },
		"cs-active-low": func() { cfg.Plot.CSActiveLow = f.csActiveLow },
		"separator":     func() { cfg.Output.Separator = f.separator },
	}
	fs.Visit(func(fl *pflag.Flag) {
		if set, ok := overrides[fl.Name]; ok {
			set()
		}
	})
}
