package midi

import (
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jsphweid/triadex/engine"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/neo"
	"github.com/jsphweid/triadex/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
)

type recorder struct {
	mu   sync.Mutex
	ons  []int
	offs []int
}

func (r *recorder) send(msg gomidi.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ch, key, vel uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		r.ons = append(r.ons, int(key))
	case msg.GetNoteEnd(&ch, &key):
		r.offs = append(r.offs, int(key))
	}
	return nil
}

func (r *recorder) snapshot() ([]int, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.ons...), append([]int(nil), r.offs...)
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func press(l *Listener, keys ...uint8) {
	for _, k := range keys {
		l.Handle(gomidi.NoteOn(0, k, 100), 0)
	}
}

func lift(l *Listener, keys ...uint8) {
	for _, k := range keys {
		l.Handle(gomidi.NoteOff(0, k), 0)
	}
}

func TestListenerTransformsHeldTriad(t *testing.T) {
	rec := &recorder{}
	l := NewListener(engine.New(quiet), quiet, 0, rec.send)

	press(l, 60, 64)
	ons, _ := rec.snapshot()
	assert.Empty(t, ons)

	press(l, 67)
	ons, offs := rec.snapshot()
	assert.Equal(t, []int{60, 63, 67}, ons)
	assert.Empty(t, offs)

	lift(l, 60, 64)
	_, offs = rec.snapshot()
	assert.Empty(t, offs)

	lift(l, 67)
	_, offs = rec.snapshot()
	assert.Equal(t, []int{60, 63, 67}, offs)
	assert.Empty(t, l.Held())
}

func TestListenerProgramChangeSelectsOperator(t *testing.T) {
	rec := &recorder{}
	e := engine.New(quiet)
	l := NewListener(e, quiet, 0, rec.send)

	l.Handle(gomidi.ProgramChange(0, 1), 0)
	assert.Equal(t, neo.L, e.Operator())

	// out of range keeps L
	l.Handle(gomidi.ProgramChange(0, 9), 0)
	assert.Equal(t, neo.L, e.Operator())

	press(l, 60, 64, 67)
	ons, _ := rec.snapshot()
	assert.Equal(t, []int{59, 64, 67}, ons)
}

func TestListenerIgnoresNonTriads(t *testing.T) {
	rec := &recorder{}
	l := NewListener(engine.New(quiet), quiet, 0, rec.send)

	press(l, 60, 63, 66)
	press(l, 70)
	ons, _ := rec.snapshot()
	assert.Empty(t, ons)
}

func TestListenerSkipsVoicingAboveKeyboard(t *testing.T) {
	rec := &recorder{}
	l := NewListener(engine.New(quiet), quiet, 0, rec.send)

	// A minor near the top; P voices A major as 121 125 128
	press(l, 116, 121, 124)
	ons, _ := rec.snapshot()
	assert.Empty(t, ons)

	lift(l, 116, 121, 124)
	_, offs := rec.snapshot()
	assert.Empty(t, offs)
}

func TestListenerDebounces(t *testing.T) {
	rec := &recorder{}
	l := NewListener(engine.New(quiet), quiet, 10*time.Millisecond, rec.send)

	press(l, 60, 64, 67)
	require.Eventually(t, func() bool {
		ons, _ := rec.snapshot()
		return len(ons) == 3
	}, time.Second, 5*time.Millisecond)

	ons, _ := rec.snapshot()
	assert.Equal(t, []int{60, 63, 67}, ons)
}

func TestReadChords(t *testing.T) {
	s, err := sample.Create([]model.Notes{{60, 64, 67}, {57, 60, 64}}, 90)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "progression.mid")
	require.NoError(t, s.WriteFile(path))

	chords, err := ReadChords(path, 3)
	require.NoError(t, err)
	require.Len(t, chords, 2)
	assert.Equal(t, model.Notes{60, 64, 67}, chords[0].Notes)
	assert.Equal(t, model.Notes{57, 60, 64}, chords[1].Notes)
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "nope.mid"))
	assert.Error(t, err)
}
