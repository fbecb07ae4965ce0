package irpulse

import (
	"strconv"
	"strings"

	"github.com/litinoveweedle/SmartIR/internal/pulse"
)

// Pulses is an immutable sequence of signed durations. Even positions are
// marks (transmitter on, positive), odd positions spaces (negative).
type Pulses struct {
	values []int
}

// Pair is one mark followed by its space. Space is zero when the sequence
// ends on a mark.
type Pair struct {
	Mark  int
	Space int
}

func newPulses(values []int) Pulses {
	return Pulses{values: values}
}

// Len returns the number of pulses.
func (p Pulses) Len() int { return len(p.values) }

// Empty reports whether the sequence holds no pulses.
func (p Pulses) Empty() bool { return len(p.values) == 0 }

// At returns the pulse at index i. It panics when i is out of range.
func (p Pulses) At(i int) int { return p.values[i] }

// Values returns a copy of the underlying durations.
func (p Pulses) Values() []int {
	out := make([]int, len(p.values))
	copy(out, p.values)
	return out
}

// Pairs groups the sequence into mark/space pairs with positive durations.
func (p Pulses) Pairs() []Pair {
	pairs := make([]Pair, 0, (len(p.values)+1)/2)
	for i := 0; i < len(p.values); i += 2 {
		pair := Pair{Mark: abs(p.values[i])}
		if i+1 < len(p.values) {
			pair.Space = abs(p.values[i+1])
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// Total returns the summed magnitude of all pulses.
func (p Pulses) Total() int {
	total := 0
	for _, v := range p.values {
		total += abs(v)
	}
	return total
}

// Units converts every duration back to Broadlink units (269/8192 ms),
// dropping the sign.
func (p Pulses) Units() []int {
	out := make([]int, len(p.values))
	for i, v := range p.values {
		out[i] = pulse.Units(v)
	}
	return out
}

// String renders the sequence in the bracketed list form accepted by Decode.
func (p Pulses) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range p.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
