package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name       string
		opts       rootOptions
		configured string
		want       string
	}{
		{name: "config value when no flags", configured: "always", want: "always"},
		{name: "--color wins over config", opts: rootOptions{color: "never"}, configured: "always", want: "never"},
		{name: "--no-color wins over everything", opts: rootOptions{color: "always", noColor: true}, configured: "auto", want: "never"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.colorMode(tt.configured))
		})
	}
}

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"render", "init", "version", "completion"}, names)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("no-color"))
}

func TestUnknownCommand(t *testing.T) {
	_, err := run(t, "plot")
	assert.Error(t, err)
}
