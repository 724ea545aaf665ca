package midi

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/engine"
	"github.com/jsphweid/triadex/util"
	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

var ErrPortNotFound = errors.New("midi port not found")

// Listener turns live note input into engine events. Once exactly three
// keys are held (and stayed held for the debounce window) the triad is
// transformed and the voicing is sent to the output. Program changes 0-2
// select the operator.
type Listener struct {
	engine  *engine.Engine
	logger  *slog.Logger
	send    func(gomidi.Message) error
	trigger func(f func())
	channel uint8

	mu       sync.Mutex
	held     map[int]bool
	sounding []int
}

// NewListener builds a listener. send may be nil when there is no output
// port; a zero wait fires immediately.
func NewListener(e *engine.Engine, logger *slog.Logger, wait time.Duration, send func(gomidi.Message) error) *Listener {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Listener{
		engine: e,
		logger: logger,
		send:   send,
		held:   make(map[int]bool),
	}
	if wait > 0 {
		l.trigger = debounce.New(wait)
	} else {
		l.trigger = func(f func()) { f() }
	}
	return l
}

// Handle matches the callback signature of gomidi.ListenTo.
func (l *Listener) Handle(msg gomidi.Message, timestampms int32) {
	var ch, key, vel, program uint8
	switch {
	case msg.GetNoteStart(&ch, &key, &vel):
		l.mu.Lock()
		l.held[int(key)] = true
		l.channel = ch
		l.mu.Unlock()
		l.trigger(l.fire)
	case msg.GetNoteEnd(&ch, &key):
		l.mu.Lock()
		delete(l.held, int(key))
		empty := len(l.held) == 0
		l.mu.Unlock()
		if empty {
			l.release()
		}
	case msg.GetProgramChange(&ch, &program):
		out := l.engine.SelectOperator(int(program))
		if out.Failed() {
			return
		}
		l.logger.Info("operator selected", "operator", out.Operator)
	}
}

// Held returns the currently pressed keys in ascending order.
func (l *Listener) Held() []int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return util.GetKeysSorted(l.held)
}

func (l *Listener) fire() {
	notes := l.Held()
	if len(notes) != constants.TriadSize {
		return
	}

	if id := l.engine.IdentifyChord(notes); id.Chord != nil {
		l.logger.Info("chord", "name", id.Chord.Name, "inversion", id.Chord.Inversion)
	}

	out := l.engine.TransformTriad(notes)
	if out.Failed() {
		return
	}
	l.logger.Info("transformed", "operator", out.Operator, "notes", out.Notes)
	if !playable(out.Notes) {
		l.logger.Warn("voicing out of midi range, not sending", "notes", out.Notes)
		return
	}

	l.release()
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range out.Notes {
		l.emit(gomidi.NoteOn(l.channel, uint8(n), constants.DefaultVelocity))
	}
	l.sounding = out.Notes
}

func playable(notes []int) bool {
	for _, n := range notes {
		if n < 0 || n > constants.MaxMidiNote {
			return false
		}
	}
	return true
}

func (l *Listener) release() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, n := range l.sounding {
		l.emit(gomidi.NoteOff(l.channel, uint8(n)))
	}
	l.sounding = nil
}

func (l *Listener) emit(msg gomidi.Message) {
	if l.send == nil {
		return
	}
	if err := l.send(msg); err != nil {
		l.logger.Error("send failed", "err", err)
	}
}

// FindInPort picks the first input whose name contains name
// (case-insensitive), or the first input when name is empty.
func FindInPort(name string) (drivers.In, error) {
	if name == "" {
		in, err := gomidi.InPort(0)
		return in, errors.Wrap(err, "no midi input available")
	}
	for _, p := range gomidi.GetInPorts() {
		if strings.Contains(strings.ToLower(p.String()), strings.ToLower(name)) {
			return p, nil
		}
	}
	return nil, errors.Wrapf(ErrPortNotFound, "input %q", name)
}

func FindOutPort(name string) (drivers.Out, error) {
	for _, p := range gomidi.GetOutPorts() {
		if strings.Contains(strings.ToLower(p.String()), strings.ToLower(name)) {
			return p, nil
		}
	}
	return nil, errors.Wrapf(ErrPortNotFound, "output %q", name)
}

// Run feeds the input port into l until ctx is done.
func Run(ctx context.Context, in drivers.In, l *Listener) error {
	stop, err := gomidi.ListenTo(in, l.Handle)
	if err != nil {
		return errors.Wrapf(err, "listening to %s", in.String())
	}
	defer stop()

	l.logger.Info("listening", "port", in.String())
	<-ctx.Done()
	l.release()
	return nil
}
