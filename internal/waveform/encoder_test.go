package waveform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBits(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want [8]Level
	}{
		{name: "zero", in: 0x00, want: [8]Level{}},
		{name: "all ones", in: 0xFF, want: [8]Level{High, High, High, High, High, High, High, High}},
		{name: "msb first", in: 0x80, want: [8]Level{High, Low, Low, Low, Low, Low, Low, Low}},
		{name: "lsb last", in: 0x01, want: [8]Level{Low, Low, Low, Low, Low, Low, Low, High}},
		{name: "mixed", in: 0xA5, want: [8]Level{High, Low, High, Low, Low, High, Low, High}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bits(tt.in))
		})
	}
}

func TestEncodeByte_AllBytes(t *testing.T) {
	for _, idle := range []Level{Low, High} {
		for v := 0; v < 256; v++ {
			ts := EncodeByte(byte(v), idle)

			require.Len(t, ts, TransitionsPerByte, "byte 0x%02X idle %s", v, idle)
			assert.Equal(t, idle, ts[0].From, "byte 0x%02X starts at idle", v)
			assert.Equal(t, idle, ts[len(ts)-1].To, "byte 0x%02X returns to idle", v)

			for i := 1; i < len(ts); i++ {
				require.Equal(t, ts[i-1].To, ts[i].From, "byte 0x%02X transitions chain at %d", v, i)
			}
		}
	}
}

func TestEncodeByte_HoldsEachBitForTwoHalfPeriods(t *testing.T) {
	ts := EncodeByte(0xA5, High)
	bits := Bits(0xA5)

	for i, bit := range bits {
		hold := ts[2*i+1]
		assert.Equal(t, Transition{bit, bit}, hold, "bit %d", i)
	}
	assert.Equal(t, Transition{High, High}, ts[0], "idle high into a leading 1")
	assert.Equal(t, Transition{High, High}, ts[16], "trailing 1 back to idle high")
}

func TestEncodeByte_IdleLow(t *testing.T) {
	ts := EncodeByte(0x80, Low)

	assert.Equal(t, Transition{Low, High}, ts[0])
	assert.Equal(t, Transition{High, High}, ts[1])
	assert.Equal(t, Transition{High, Low}, ts[2])
	assert.Equal(t, Transition{Low, Low}, ts[16])
}

func TestIdle(t *testing.T) {
	assert.Nil(t, Idle(High, 0))
	assert.Nil(t, Idle(Low, -3))

	ts := Idle(High, 4)
	require.Len(t, ts, 4)
	for _, tr := range ts {
		assert.Equal(t, Transition{High, High}, tr)
	}
}

func TestLevelOf(t *testing.T) {
	assert.Equal(t, High, LevelOf(true))
	assert.Equal(t, Low, LevelOf(false))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "low", Low.String())
	assert.Equal(t, "high", High.String())
	assert.Equal(t, "Level(7)", Level(7).String())
	assert.Equal(t, "low->high", Transition{Low, High}.String())
}
