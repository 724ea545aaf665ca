package pitch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMod12StaysInRange(t *testing.T) {
	assert := assert.New(t)
	for x := -50; x <= 150; x++ {
		pc := Mod12(x)
		assert.GreaterOrEqual(int(pc), 0)
		assert.LessOrEqual(int(pc), 11)
		assert.Equal(pc, Mod12(int(pc)), "mod12 should be idempotent for %d", x)
	}
}

func TestMod12Negative(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(PitchClass(11), Mod12(-1))
	assert.Equal(PitchClass(10), Mod12(-14))
	assert.Equal(PitchClass(0), Mod12(-12))
}

func TestOctaveFloors(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, Octave(60))
	assert.Equal(4, Octave(59))
	assert.Equal(0, Octave(0))
	assert.Equal(-1, Octave(-1))
	assert.Equal(-1, Octave(-12))
	assert.Equal(-2, Octave(-13))
}

func TestNamesPreferSharps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", PitchClass(0).Name())
	assert.Equal("C#", PitchClass(1).Name())
	assert.Equal("A#", PitchClass(10).Name())
	assert.Equal("B", PitchClass(11).Name())
}

func TestInterval(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(4, PitchClass(0).Interval(4))
	assert.Equal(8, PitchClass(4).Interval(0))
	assert.Equal(PitchClass(11), PitchClass(0).Add(-1))
}

func TestParseTonic(t *testing.T) {
	cases := []struct {
		symbol string
		pc     PitchClass
	}{
		{"C", 0},
		{"Cmaj", 0},
		{"D#m", 3},
		{"F#dim", 6},
		{"Bb7", 10},
		{"cb", 11},
		{"E#", 5},
		{"  g  ", 7},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("tonic of %q", c.symbol), func(t *testing.T) {
			pc, err := ParseTonic(c.symbol)
			assert.NoError(t, err)
			assert.Equal(t, c.pc, pc)
		})
	}
}

func TestParseTonicRejectsGarbage(t *testing.T) {
	_, err := ParseTonic("H7")
	assert.True(t, errors.Is(err, ErrBadChordSymbol))

	_, err = ParseTonic("")
	assert.True(t, errors.Is(err, ErrBadChordSymbol))
}

func TestTonicMidi(t *testing.T) {
	assert.Equal(t, 30, TonicMidi(6))
	assert.Equal(t, 24, TonicMidi(0))
}
