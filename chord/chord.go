package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/pitch"
	"github.com/jsphweid/triadex/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrInvalidTriad = errors.New("invalid triad")

type Quality int

const (
	Unknown Quality = iota
	Major
	Minor
	Diminished
	Augmented
	Sus4
)

var qualitySymbols = map[Quality]string{
	Major:      "maj",
	Minor:      "m",
	Diminished: "dim",
	Augmented:  "aug",
	Sus4:       "sus4",
}

var qualityNames = map[Quality]string{
	Major:      "major",
	Minor:      "minor",
	Diminished: "diminished",
	Augmented:  "augmented",
	Sus4:       "sus4",
}

// Symbol is the suffix used in chord names, e.g. the "m" in "Am".
func (q Quality) Symbol() string {
	if s, ok := qualitySymbols[q]; ok {
		return s
	}
	return "unknown"
}

func (q Quality) String() string {
	if s, ok := qualityNames[q]; ok {
		return s
	}
	return "unknown"
}

type Inversion int

const (
	InversionUnknown Inversion = iota
	RootPosition
	FirstInversion
	SecondInversion
)

var inversionNames = map[Inversion]string{
	RootPosition:    "root",
	FirstInversion:  "first",
	SecondInversion: "second",
}

func (inv Inversion) String() string {
	if s, ok := inversionNames[inv]; ok {
		return s
	}
	return "unknown"
}

// sorted intervals from the root up to the other two tones
type intervalPair [2]int

var patterns = map[intervalPair]Quality{
	{3, 7}: Minor,
	{4, 7}: Major,
	{3, 6}: Diminished,
	{4, 8}: Augmented,
	{5, 7}: Sus4,
}

type Triad struct {
	Root      pitch.PitchClass
	Quality   Quality
	Intervals [2]int
}

func (t Triad) Name() string {
	return t.Root.Name() + t.Quality.Symbol()
}

func matchRoot(pcs [constants.TriadSize]pitch.PitchClass, i int) (Triad, bool) {
	root := pcs[i]
	var pair intervalPair
	n := 0
	for j, pc := range pcs {
		if j == i {
			continue
		}
		pair[n] = root.Interval(pc)
		n++
	}
	if pair[0] > pair[1] {
		pair[0], pair[1] = pair[1], pair[0]
	}

	quality, ok := patterns[pair]
	if !ok {
		return Triad{}, false
	}
	return Triad{Root: root, Quality: quality, Intervals: pair}, true
}

// ClassifyRoot tries each pitch class as the root, in input order, and
// returns the first one whose intervals to the other two match a known
// pattern.
func ClassifyRoot(pcs [constants.TriadSize]pitch.PitchClass) (Triad, error) {
	for i := range pcs {
		if t, ok := matchRoot(pcs, i); ok {
			return t, nil
		}
	}
	return Triad{}, errors.Wrapf(ErrInvalidTriad, "no root found for pitch classes %v", pcs)
}

type Identification struct {
	Triad
	// the matched triad, ascending
	PitchClasses [constants.TriadSize]pitch.PitchClass
	Inversion    Inversion
}

// Identify names the first recognized triad among the distinct pitch
// classes of notes. A nil result with a nil error means the notes are
// well formed but no 3-subset matches a known pattern.
func Identify(notes []int) (*Identification, error) {
	if len(notes) < constants.TriadSize {
		return nil, errors.Wrapf(ErrInvalidTriad, "expected at least %d notes, found %d", constants.TriadSize, len(notes))
	}

	pcs := util.UniqueSorted(pitch.Classes(notes))
	if len(pcs) < constants.TriadSize {
		return nil, errors.Wrapf(ErrInvalidTriad, "expected %d unique pitch classes, found %d", constants.TriadSize, len(pcs))
	}

	for _, candidate := range util.Combinations3(pcs) {
		triad, err := ClassifyRoot(candidate)
		if err != nil {
			continue
		}
		return &Identification{
			Triad:        triad,
			PitchClasses: candidate,
			Inversion:    inversionOf(triad, candidate, notes),
		}, nil
	}
	return nil, nil
}

func inversionOf(t Triad, pcs [constants.TriadSize]pitch.PitchClass, notes []int) Inversion {
	lowest, found := 0, false
	for _, n := range notes {
		if !slices.Contains(pcs[:], pitch.Mod12(n)) {
			continue
		}
		if !found || n < lowest {
			lowest, found = n, true
		}
	}
	if !found {
		return InversionUnknown
	}

	switch t.Root.Interval(pitch.Mod12(lowest)) {
	case 0:
		return RootPosition
	case t.Intervals[0]:
		return FirstInversion
	case t.Intervals[1]:
		return SecondInversion
	}
	return InversionUnknown
}

// CreateChordKey joins the notes in ascending order, e.g. "60-64-67".
func CreateChordKey(notes []int) string {
	sorted := slices.Clone(notes)
	slices.Sort(sorted)
	parts := make([]string, len(sorted))
	for i, note := range sorted {
		parts[i] = fmt.Sprintf("%v", note)
	}
	return strings.Join(parts, "-")
}
