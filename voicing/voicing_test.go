package voicing

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"github.com/jsphweid/triadex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoicesCMinorFromCMajor(t *testing.T) {
	v, err := Voice([3]pitch.PitchClass{0, 3, 7}, []int{60, 64, 67})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Voicing{60, 63, 67}, v)
}

func TestVoicesLeadingToneBelow(t *testing.T) {
	v, err := Voice([3]pitch.PitchClass{11, 4, 7}, []int{60, 64, 67})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(Voicing{59, 64, 67}, v)
}

func TestComparesByPosition(t *testing.T) {
	// reference listed fifth first: anchor is G's octave and slot 0
	// (the root) is measured against 67
	v, err := Voice([3]pitch.PitchClass{0, 4, 7}, []int{67, 60, 64})

	require.NoError(t, err)
	assert.Equal(t, Voicing{64, 67, 72}, v)
}

func TestEveryVoicingIsValid(t *testing.T) {
	references := [][]int{
		{60, 64, 67},
		{36, 40, 43},
		{71, 62, 55},
		{0, 4, 7},
		{5, 9, 12},
	}

	for _, ref := range references {
		t.Run(fmt.Sprintf("reference %v", ref), func(t *testing.T) {
			for a := 0; a < 12; a++ {
				for b := 0; b < 12; b++ {
					for c := 0; c < 12; c++ {
						if a == b || b == c || a == c {
							continue
						}
						targets := [3]pitch.PitchClass{pitch.PitchClass(a), pitch.PitchClass(b), pitch.PitchClass(c)}
						v, err := Voice(targets, ref)
						require.NoError(t, err, "targets %v", targets)

						assert.True(t, sort.IntsAreSorted(v.Notes()), "%v not sorted", v)
						assert.NotEqual(t, v[0], v[1])
						assert.NotEqual(t, v[1], v[2])
						assert.LessOrEqual(t, v.Span(), 18)

						got := []int{int(pitch.Mod12(v[0])), int(pitch.Mod12(v[1])), int(pitch.Mod12(v[2]))}
						assert.ElementsMatch(t, []int{a, b, c}, got)
					}
				}
			}
		})
	}
}

func TestNoValidVoicing(t *testing.T) {
	_, err := Voice([3]pitch.PitchClass{0, 0, 0}, []int{60, 64, 67})
	assert.True(t, errors.Is(err, ErrNoValidVoicing))

	_, err = Voice([3]pitch.PitchClass{0, 4, 7}, []int{60, 64})
	assert.True(t, errors.Is(err, ErrNoValidVoicing))
}
