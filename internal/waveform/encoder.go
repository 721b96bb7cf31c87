package waveform

import "fmt"

// Level is the logic state of a line.
type Level uint8

const (
	Low  Level = 0
	High Level = 1
)

// LevelOf maps a pull-up setting to the idle level it produces.
func LevelOf(high bool) Level {
	if high {
		return High
	}
	return Low
}

func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
}

// Transition is the change of a line across one half-bit period.
type Transition struct {
	From Level
	To   Level
}

func (t Transition) String() string {
	return t.From.String() + "->" + t.To.String()
}

// TransitionsPerByte is the length of EncodeByte's result: 8 bits held for
// two half periods each, plus the step back to idle.
const TransitionsPerByte = 2*8 + 1

// Bits returns the bits of b, most significant first.
func Bits(b byte) [8]Level {
	var bits [8]Level
	for i := range bits {
		if b&(1<<(7-i)) != 0 {
			bits[i] = High
		}
	}
	return bits
}

// EncodeByte returns the transitions that draw b on a line idling at idle.
// The sequence always starts from and returns to idle, so consecutive bytes
// never share state.
func EncodeByte(b byte, idle Level) []Transition {
	levels := make([]Level, 0, 2*8+2)
	levels = append(levels, idle)
	for _, bit := range Bits(b) {
		levels = append(levels, bit, bit)
	}
	levels = append(levels, idle)

	ts := make([]Transition, 0, TransitionsPerByte)
	for i := 1; i < len(levels); i++ {
		ts = append(ts, Transition{From: levels[i-1], To: levels[i]})
	}
	return ts
}

// Idle returns n transitions holding the line at level.
func Idle(level Level, n int) []Transition {
	if n <= 0 {
		return nil
	}
	ts := make([]Transition, n)
	for i := range ts {
		ts[i] = Transition{From: level, To: level}
	}
	return ts
}
