package waveform

import (
	"fmt"
	"strings"
)

// ByteLabels returns a row with the hex value of each byte right-aligned
// under the last columns of its waveform.
func ByteLabels(data []byte, cfg Config) string {
	labels := make([]string, len(data))
	for i, b := range data {
		labels[i] = fmt.Sprintf("%*s0x%02X", TransitionsPerByte-5, "", b)
	}
	prefix := strings.Repeat(" ", labelWidth+max(cfg.PrefixCycles, 0))
	gap := strings.Repeat(" ", 2*max(cfg.DelayCycles, 0)+1)
	return prefix + strings.Join(labels, gap)
}
