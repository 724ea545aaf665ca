package chord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jsphweid/triadex/pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifiesCMajor(t *testing.T) {
	triad, err := ClassifyRoot([3]pitch.PitchClass{0, 4, 7})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(pitch.PitchClass(0), triad.Root)
	assert.Equal(Major, triad.Quality)
	assert.Equal("Cmaj", triad.Name())
}

func TestClassifiesEveryPattern(t *testing.T) {
	cases := []struct {
		pcs     [3]pitch.PitchClass
		root    pitch.PitchClass
		quality Quality
	}{
		{[3]pitch.PitchClass{9, 0, 4}, 9, Minor},
		{[3]pitch.PitchClass{11, 2, 5}, 11, Diminished},
		{[3]pitch.PitchClass{0, 4, 8}, 0, Augmented},
		{[3]pitch.PitchClass{2, 7, 9}, 2, Sus4},
		{[3]pitch.PitchClass{6, 10, 1}, 6, Major},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("classify %v", c.pcs), func(t *testing.T) {
			triad, err := ClassifyRoot(c.pcs)
			assert := assert.New(t)
			assert.NoError(err)
			assert.Equal(c.root, triad.Root)
			assert.Equal(c.quality, triad.Quality)
		})
	}
}

func TestClassifyIgnoresRotation(t *testing.T) {
	// augmented triads are symmetric, so their root follows input order
	for root := 0; root < 12; root++ {
		for _, shape := range [][2]int{{4, 7}, {3, 7}, {3, 6}, {5, 7}} {
			r := pitch.PitchClass(root)
			pcs := [3]pitch.PitchClass{r, r.Add(shape[0]), r.Add(shape[1])}
			rotations := [][3]pitch.PitchClass{
				pcs,
				{pcs[1], pcs[2], pcs[0]},
				{pcs[2], pcs[0], pcs[1]},
				{pcs[2], pcs[1], pcs[0]},
			}
			want, err := ClassifyRoot(pcs)
			require.NoError(t, err)
			for _, rot := range rotations {
				got, err := ClassifyRoot(rot)
				require.NoError(t, err)
				assert.Equal(t, want.Root, got.Root, "rotation %v", rot)
				assert.Equal(t, want.Quality, got.Quality, "rotation %v", rot)
			}
		}
	}
}

func TestClassifyRejectsNonTriads(t *testing.T) {
	cases := [][3]pitch.PitchClass{
		{0, 1, 2},
		{0, 0, 7},
		{0, 2, 6},
	}
	for _, pcs := range cases {
		_, err := ClassifyRoot(pcs)
		assert.True(t, errors.Is(err, ErrInvalidTriad), "%v", pcs)
	}
}

func TestIdentifyInversions(t *testing.T) {
	cases := []struct {
		notes     []int
		name      string
		inversion Inversion
	}{
		{[]int{60, 64, 67}, "Cmaj", RootPosition},
		{[]int{64, 67, 72}, "Cmaj", FirstInversion},
		{[]int{67, 72, 76}, "Cmaj", SecondInversion},
		{[]int{76, 72, 67}, "Cmaj", SecondInversion},
		{[]int{57, 60, 64}, "Am", RootPosition},
		{[]int{64, 57, 72}, "Am", RootPosition},
		{[]int{48, 55, 60, 64}, "Cmaj", RootPosition},
		{[]int{62, 67, 69}, "Dsus4", RootPosition},
		{[]int{67, 74, 81}, "Dsus4", FirstInversion},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("identify %v", c.notes), func(t *testing.T) {
			id, err := Identify(c.notes)
			require.NoError(t, err)
			require.NotNil(t, id)
			assert.Equal(t, c.name, id.Name())
			assert.Equal(t, c.inversion, id.Inversion)
		})
	}
}

func TestIdentifyUsesLowestAbsoluteNote(t *testing.T) {
	// listed E, G, C but the C is the lowest sounding note
	id, err := Identify([]int{64, 67, 60})

	require.NoError(t, err)
	require.NotNil(t, id)
	assert := assert.New(t)
	assert.Equal(Major, id.Quality)
	assert.Equal("C", id.Root.Name())
	assert.Equal(RootPosition, id.Inversion)
}

func TestIdentifyUnknown(t *testing.T) {
	id, err := Identify([]int{60, 61, 62})

	assert := assert.New(t)
	assert.NoError(err)
	assert.Nil(id)
}

func TestIdentifySearchesSubsetsInOrder(t *testing.T) {
	id, err := Identify([]int{60, 64, 67, 71})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "Cmaj", id.Name())
	assert.Equal(t, [3]pitch.PitchClass{0, 4, 7}, id.PitchClasses)

	// {0,2,4,7}: (0,2,4) fails, then (0,2,7) matches as G sus4 before
	// (0,4,7) is ever tried
	id, err = Identify([]int{60, 62, 64, 67})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "Gsus4", id.Name())
	assert.Equal(t, [3]pitch.PitchClass{0, 2, 7}, id.PitchClasses)
	assert.Equal(t, FirstInversion, id.Inversion)

	// the B is not part of the triad, so the E is the bass
	id, err = Identify([]int{59, 64, 67, 72})
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, "Cmaj", id.Name())
	assert.Equal(t, FirstInversion, id.Inversion)
}

func TestIdentifyMalformed(t *testing.T) {
	_, err := Identify([]int{60, 64})
	assert.True(t, errors.Is(err, ErrInvalidTriad))

	_, err = Identify([]int{60, 72, 64})
	assert.True(t, errors.Is(err, ErrInvalidTriad))
}

func TestCreateChordKeyDoesNotMutate(t *testing.T) {
	notes := []int{67, 60, 64}
	assert.Equal(t, "60-64-67", CreateChordKey(notes))
	assert.Equal(t, []int{67, 60, 64}, notes)
}
