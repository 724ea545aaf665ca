package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/util"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type reducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      int
}

func getChord(pressed map[int]bool, offset int64, formedByNoteOn bool) model.Chord {
	return model.Chord{
		Offset:         offset,
		Notes:          util.GetKeysSorted(pressed),
		FormedByNoteOn: formedByNoteOn,
	}
}

// GetChords returns every set of simultaneously held notes in s, ordered
// by time. Events sharing a timestamp collapse into the last state.
func GetChords(s *smf.SMF) (chords []model.Chord, err error) {
	// smf can panic on malformed tracks
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(fmt.Sprint(r))
		}
	}()

	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset:    absTime,
					IsNoteOff: false,
					Note:      int(key),
				})
			case msg.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      int(key),
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChord := make(map[int64]model.Chord)
	pressed := make(map[int]bool)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		timestampToChord[evt.Offset] = getChord(pressed, evt.Offset, !evt.IsNoteOff)
	}

	for _, offset := range util.GetKeysSorted(timestampToChord) {
		c := timestampToChord[offset]
		if len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	return chords, nil
}
