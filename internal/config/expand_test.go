package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde path", in: "~/configs/spi.yaml", want: filepath.Join(home, "configs", "spi.yaml")},
		{name: "absolute path unchanged", in: "/etc/spiplot.yaml", want: "/etc/spiplot.yaml"},
		{name: "relative path unchanged", in: "plots/spi.yaml", want: "plots/spi.yaml"},
		{name: "other user unsupported", in: "~bob/spi.yaml", want: "~bob/spi.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandTilde(tt.in))
		})
	}
}
