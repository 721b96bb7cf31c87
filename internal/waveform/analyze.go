package waveform

import "strings"

// AnalyzeEdges samples a data line at every falling clock edge. clockTop and
// dataTop are the plain top rows of two channels rendered with the same
// layout. The result has one rune per column: "1" where the data line is
// high at a falling edge, "0" where it is low, blank elsewhere.
func AnalyzeEdges(clockTop, dataTop string) string {
	clk := []rune(clockTop)
	data := []rune(dataTop)
	n := min(len(clk), len(data))

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteString(edgeBit(clk[i], data[i]))
	}
	return b.String()
}

func edgeBit(clk, data rune) string {
	if clk != '┓' {
		return " "
	}
	switch data {
	case '━':
		return "1"
	case ' ':
		return "0"
	default:
		return " "
	}
}

// DecodeBits strips the blanks from an AnalyzeEdges row, leaving the decoded
// bits in order.
func DecodeBits(annotation string) string {
	return strings.ReplaceAll(annotation, " ", "")
}

// BitString formats data as the bit string AnalyzeEdges should recover.
func BitString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 8)
	for _, v := range data {
		for _, bit := range Bits(v) {
			if bit == High {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
