package voicing

import (
	"sort"

	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/pitch"
	"github.com/jsphweid/triadex/util"
	"github.com/pkg/errors"
)

var ErrNoValidVoicing = errors.New("no valid voicing")

// Voicing is an ascending triple of distinct notes spanning at most
// MaxVoicingSpan semitones.
type Voicing [constants.TriadSize]int

func (v Voicing) Notes() []int {
	return v[:]
}

func (v Voicing) Span() int {
	return v[len(v)-1] - v[0]
}

var octaveOffsets = [...]int{-constants.OctaveSize, 0, constants.OctaveSize}

type candidate struct {
	// in target order (root, third, fifth)
	slots  [constants.TriadSize]int
	sorted Voicing
}

func (c candidate) valid() bool {
	v := c.sorted
	return v[0] != v[1] && v[1] != v[2] && v.Span() <= constants.MaxVoicingSpan
}

// distance compares slot i with reference note i.
func (c candidate) distance(reference []int) int {
	var total int
	for i, note := range c.slots {
		total += util.Abs(note - reference[i])
	}
	return total
}

func candidates(targets [constants.TriadSize]pitch.PitchClass, anchor int) []candidate {
	var placements [constants.TriadSize][len(octaveOffsets)]int
	for i, pc := range targets {
		for j, offset := range octaveOffsets {
			placements[i][j] = anchor + offset + int(pc)
		}
	}

	res := make([]candidate, 0, len(octaveOffsets)*len(octaveOffsets)*len(octaveOffsets))
	for _, r := range placements[0] {
		for _, t := range placements[1] {
			for _, f := range placements[2] {
				c := candidate{slots: [constants.TriadSize]int{r, t, f}}
				c.sorted = Voicing(c.slots)
				sort.Ints(c.sorted[:])
				res = append(res, c)
			}
		}
	}
	return res
}

// Voice places the target pitch classes within an octave either side of
// the reference chord's first note and picks the placement that moves the
// voices least, compared position by position. Ties go to the first
// placement found.
func Voice(targets [constants.TriadSize]pitch.PitchClass, reference []int) (Voicing, error) {
	if len(reference) != constants.TriadSize {
		return Voicing{}, errors.Wrapf(ErrNoValidVoicing, "reference chord needs %d notes, found %d", constants.TriadSize, len(reference))
	}
	anchor := pitch.Octave(reference[0]) * constants.OctaveSize

	var best *candidate
	bestDistance := 0
	for _, c := range candidates(targets, anchor) {
		if !c.valid() {
			continue
		}
		d := c.distance(reference)
		if best == nil || d < bestDistance {
			c := c
			best, bestDistance = &c, d
		}
	}

	if best == nil {
		return Voicing{}, errors.Wrapf(ErrNoValidVoicing, "targets %v around %v", targets, reference)
	}
	return best.sorted, nil
}
