package midi

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.New(fmt.Sprint(r))
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "error reading midi file")
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "error parsing midi file")
	}

	return res, nil
}

// ReadChords returns the simultaneities of a MIDI file with at least
// minNotes notes.
func ReadChords(filepath string, minNotes int) ([]model.Chord, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return nil, err
	}
	all, err := chord.GetChords(s)
	if err != nil {
		return nil, errors.Wrapf(err, "reading chords from %s", filepath)
	}

	var res []model.Chord
	for _, c := range all {
		if len(c.Notes) >= minNotes {
			res = append(res, c)
		}
	}
	return res, nil
}
