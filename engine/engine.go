package engine

import (
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/model"
	"github.com/jsphweid/triadex/neo"
	"github.com/jsphweid/triadex/pitch"
	"github.com/jsphweid/triadex/voicing"
)

const (
	EventSelect      = "select"
	EventTransform   = "triad"
	EventIdentify    = "identify"
	EventProgression = "progression"
	EventTonic       = "tonic"
)

// Engine handles one event at a time on behalf of every front end (CLI,
// HTTP, live MIDI). It owns the selected operator.
type Engine struct {
	mu          sync.Mutex
	transformer *neo.Transformer
	logger      *slog.Logger
}

func New(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		transformer: neo.NewTransformer(),
		logger:      logger,
	}
}

func (e *Engine) Operator() neo.Operator {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.transformer.Operator()
}

func (e *Engine) SelectOperator(index int) model.Output {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.newOutput(EventSelect)
	if err := e.transformer.Select(index); err != nil {
		e.fail(&out, err)
	}
	out.Operator = e.transformer.Operator().String()
	return out
}

func (e *Engine) TransformTriad(notes []int) model.Output {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.newOutput(EventTransform)
	out.Operator = e.transformer.Operator().String()
	v, err := e.transformer.Apply(notes)
	if err != nil {
		e.fail(&out, err)
		return out
	}
	out.Notes = v.Notes()
	e.logger.Debug("transformed triad", "id", out.ID, "operator", out.Operator, "in", notes, "out", out.Notes)
	return out
}

func (e *Engine) IdentifyChord(notes []int) model.Output {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.newOutput(EventIdentify)
	id, err := chord.Identify(notes)
	if err != nil {
		e.fail(&out, err)
		return out
	}
	if id == nil {
		out.Unknown = true
		return out
	}
	out.Chord = toModel(id)
	e.logger.Debug("identified chord", "id", out.ID, "notes", notes, "chord", out.Chord.Name, "inversion", out.Chord.Inversion)
	return out
}

// Progression applies a chain of operators without touching the selected
// operator.
func (e *Engine) Progression(notes []int, operators string) model.Output {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.newOutput(EventProgression)
	ops, err := neo.ParseOperators(operators)
	if err != nil {
		e.fail(&out, err)
		return out
	}
	steps, err := neo.Chain(notes, ops)
	if err != nil {
		e.fail(&out, err)
		return out
	}
	for _, v := range steps {
		out.Progression = append(out.Progression, v.Notes())
	}
	return out
}

func (e *Engine) Tonic(symbol string) model.Output {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := e.newOutput(EventTonic)
	pc, err := pitch.ParseTonic(symbol)
	if err != nil {
		e.fail(&out, err)
		return out
	}
	midi := pitch.TonicMidi(pc)
	out.Tonic = &midi
	return out
}

func (e *Engine) newOutput(event string) model.Output {
	return model.Output{ID: uuid.New().String(), Event: event}
}

func (e *Engine) fail(out *model.Output, err error) {
	out.Failure = &model.Failure{Kind: FailureKind(err), Message: err.Error()}
	e.logger.Warn("event failed", "id", out.ID, "event", out.Event, "kind", out.Failure.Kind, "err", err)
}

// FailureKind maps an error from the core packages to the kind reported
// to callers.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, neo.ErrInvalidOperatorIndex):
		return model.FailureInvalidOperatorIndex
	case errors.Is(err, chord.ErrInvalidTriad):
		return model.FailureInvalidTriad
	case errors.Is(err, voicing.ErrNoValidVoicing):
		return model.FailureNoValidVoicing
	case errors.Is(err, pitch.ErrBadChordSymbol):
		return model.FailureBadChord
	case errors.Is(err, pitch.ErrUnknownRoot):
		return model.FailureUnknownRoot
	}
	return model.FailureBadInput
}

func toModel(id *chord.Identification) *model.Identification {
	pcs := make([]int, len(id.PitchClasses))
	for i, pc := range id.PitchClasses {
		pcs[i] = int(pc)
	}
	return &model.Identification{
		Name:         id.Name(),
		Root:         id.Root.Name(),
		Quality:      id.Quality.String(),
		Inversion:    id.Inversion.String(),
		PitchClasses: pcs,
	}
}

// ParseNotes keeps the integer arguments of a raw event and drops the rest.
func ParseNotes(args []string) []int {
	var notes []int
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			continue
		}
		notes = append(notes, n)
	}
	return notes
}
