package irpulse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPulsesAccessors(t *testing.T) {
	p := newPulses([]int{500, -250, 500})
	require.Equal(t, 3, p.Len())
	require.False(t, p.Empty())
	require.Equal(t, -250, p.At(1))
	require.Equal(t, 1250, p.Total())
	require.Equal(t, "[500,-250,500]", p.String())
	require.Equal(t, []Pair{{Mark: 500, Space: 250}, {Mark: 500}}, p.Pairs())
}

func TestPulsesValuesIsCopy(t *testing.T) {
	p := newPulses([]int{1, -2})
	v := p.Values()
	v[0] = 99
	require.Equal(t, 1, p.At(0))
}

func TestPulsesZeroValue(t *testing.T) {
	var p Pulses
	require.True(t, p.Empty())
	require.Equal(t, "[]", p.String())
	require.Empty(t, p.Pairs())
	require.Empty(t, p.Values())
}
