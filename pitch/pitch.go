package pitch

import (
	"regexp"
	"strings"

	"github.com/jsphweid/triadex/constants"
	"github.com/pkg/errors"
)

// PitchClass is a note reduced modulo 12, always in [0,11].
type PitchClass int

var (
	ErrBadChordSymbol = errors.New("bad chord symbol")
	ErrUnknownRoot    = errors.New("unknown root")
)

var names = [constants.OctaveSize]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// keys are upper-cased, so flats show up as "DB", "EB" ...
var tonics = map[string]PitchClass{
	"C": 0, "B#": 0,
	"C#": 1, "DB": 1,
	"D":  2,
	"D#": 3, "EB": 3,
	"E": 4, "FB": 4,
	"F": 5, "E#": 5,
	"F#": 6, "GB": 6,
	"G":  7,
	"G#": 8, "AB": 8,
	"A":  9,
	"A#": 10, "BB": 10,
	"B": 11, "CB": 11,
}

var tonicPattern = regexp.MustCompile(`^([A-Ga-g])([#b]?)`)

func Mod12(x int) PitchClass {
	return PitchClass(((x % constants.OctaveSize) + constants.OctaveSize) % constants.OctaveSize)
}

// Octave floors, so Octave(-1) is -1.
func Octave(note int) int {
	if note < 0 {
		return (note - constants.OctaveSize + 1) / constants.OctaveSize
	}
	return note / constants.OctaveSize
}

func (pc PitchClass) Name() string {
	return names[Mod12(int(pc))]
}

func (pc PitchClass) String() string {
	return pc.Name()
}

// Add transposes by semitones, wrapping around the octave.
func (pc PitchClass) Add(semitones int) PitchClass {
	return Mod12(int(pc) + semitones)
}

// Interval is the upward distance from pc to other.
func (pc PitchClass) Interval(other PitchClass) int {
	return int(Mod12(int(other) - int(pc)))
}

func Classes(notes []int) []PitchClass {
	res := make([]PitchClass, len(notes))
	for i, n := range notes {
		res[i] = Mod12(n)
	}
	return res
}

// ParseTonic reads the root at the start of a chord symbol like "F#dim" or "Bb7".
func ParseTonic(symbol string) (PitchClass, error) {
	m := tonicPattern.FindStringSubmatch(strings.TrimSpace(symbol))
	if m == nil {
		return 0, errors.Wrapf(ErrBadChordSymbol, "%q", symbol)
	}
	root := strings.ToUpper(m[1] + m[2])
	pc, ok := tonics[root]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownRoot, "%q", root)
	}
	return pc, nil
}

// TonicMidi places pc in the C1 octave (24..35).
func TonicMidi(pc PitchClass) int {
	return constants.C1Midi + int(pc)
}
