package sample

import (
	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const ticksPerQuarter = 960

// Create renders chords as a single-track SMF, one chord per beat (four
// beats for the last one so it rings out).
func Create(chords []model.Notes, bpm float64) (*smf.SMF, error) {
	if len(chords) == 0 {
		return nil, errors.New("nothing to render")
	}
	if bpm <= 0 {
		bpm = constants.DefaultBPM
	}

	res := smf.New()
	ticks := smf.MetricTicks(ticksPerQuarter)
	res.TimeFormat = ticks

	var track smf.Track
	track.Add(0, smf.MetaTrackSequenceName("triadex"))
	track.Add(0, smf.MetaMeter(4, 4))
	track.Add(0, smf.MetaTempo(bpm))

	for i, notes := range chords {
		length := ticks.Ticks4th()
		if i == len(chords)-1 {
			length *= 4
		}
		for _, n := range notes {
			if n < 0 || n > constants.MaxMidiNote {
				return nil, errors.Errorf("note %d out of midi range", n)
			}
			track.Add(0, midi.NoteOn(0, uint8(n), constants.DefaultVelocity))
		}
		for j, n := range notes {
			var delta uint32
			if j == 0 {
				delta = length
			}
			track.Add(delta, midi.NoteOff(0, uint8(n)))
		}
	}
	track.Close(0)

	if err := res.Add(track); err != nil {
		return nil, errors.Wrap(err, "adding track")
	}
	return res, nil
}
