package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rileyhilliard/spiplot/internal/errors"
	"github.com/rileyhilliard/spiplot/internal/waveform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Plain(t *testing.T) {
	isolate(t)

	out, err := run(t, "render", "--mosi", "A5", "--miso", "00", "--quiet", "--color", "never")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	// 3 clock rows, 4 MOSI rows, 4 MISO rows, a blank after each group,
	// and the empty string after the final newline
	require.Len(t, lines, 3+1+4+1+4+1+1)
	assert.True(t, strings.HasPrefix(lines[1], waveform.LabelClock))
	assert.True(t, strings.HasPrefix(lines[5], waveform.LabelMOSI))
	assert.True(t, strings.HasPrefix(lines[10], waveform.LabelMISO))
	assert.Equal(t, "10100101", waveform.DecodeBits(lines[7]))
	assert.Equal(t, "00000000", waveform.DecodeBits(lines[12]))
	assert.Empty(t, lines[3])
	assert.NotContains(t, out, "\x1b[")
}

func TestRender_Header(t *testing.T) {
	isolate(t)

	out, err := run(t, "render", "--mosi", "01 02", "--miso", "03 04", "--no-color")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "SPI transfer  2 bytes  clock idle low  data idle high", lines[0])
	assert.Empty(t, lines[1])
	assert.True(t, strings.HasPrefix(lines[3], waveform.LabelClock))
}

func TestRender_ColorAlways(t *testing.T) {
	isolate(t)

	out, err := run(t, "render", "--mosi", "FF", "--miso", "00", "-q", "--color", "always", "--clk-color", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[38;5;99m┏\x1b[0m")
	assert.Contains(t, out, "\x1b[38;5;3m━\x1b[0m")
}

func TestRender_ShowBytesAndSeparator(t *testing.T) {
	isolate(t)

	out, err := run(t, "render", "--mosi", "0x12,0x34", "--miso", "ab cd",
		"-q", "--no-color", "--show-bytes", "--show-bits=false", "--separator", "0")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3+4+4)
	assert.True(t, strings.HasSuffix(lines[6], "0x34"))
	assert.Contains(t, lines[6], "0x12")
	assert.True(t, strings.HasSuffix(lines[10], "0xCD"))
}

func TestRender_Verify(t *testing.T) {
	isolate(t)

	out, err := run(t, "render", "--mosi", "deadbeef", "--miso", "01234567", "-q", "--no-color", "--verify")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ decoded bits match the input")
}

func TestRender_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
		want string
	}{
		{
			name: "length mismatch",
			args: []string{"render", "--mosi", "00", "--miso", ""},
			code: errors.ErrInput,
			want: "lengths don't match",
		},
		{
			name: "bad mosi",
			args: []string{"render", "--mosi", "xyz", "--miso", "00"},
			code: errors.ErrInput,
			want: "isn't a hex byte",
		},
		{
			name: "bad color flag",
			args: []string{"render", "--mosi", "00", "--miso", "00", "--clk-color", "300"},
			code: errors.ErrConfig,
			want: "clk_color",
		},
		{
			name: "bad color mode",
			args: []string{"render", "--mosi", "00", "--miso", "00", "--color", "blue"},
			code: errors.ErrConfig,
			want: "output.color",
		},
		{
			name: "missing explicit config",
			args: []string{"render", "--config", "/nonexistent/.spiplot.yaml", "--mosi", "00", "--miso", "00"},
			code: errors.ErrConfig,
			want: "not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			out, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, out, "nothing is printed on failure")
		})
	}
}

func TestRender_UsesConfigFile(t *testing.T) {
	work := isolate(t)
	content := "plot:\n  show_bits: false\n  prefix_cycles: 0\noutput:\n  color: never\n  header: false\n  separator: 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(work, ".spiplot.yaml"), []byte(content), 0644))

	out, err := run(t, "render", "--mosi", "80", "--miso", "01")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)
	// no prefix: the data line leaves idle high in the first column
	assert.Equal(t, "     ━", lines[3][:len("     ━")])
}

func TestRender_FlagBeatsConfigFile(t *testing.T) {
	work := isolate(t)
	content := "plot:\n  show_bits: false\noutput:\n  color: never\n  header: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(work, ".spiplot.yaml"), []byte(content), 0644))

	out, err := run(t, "render", "--mosi", "0F", "--miso", "F0", "--show-bits")
	require.NoError(t, err)
	assert.Contains(t, out, "0 0 0 0 1 1 1 1")
}
