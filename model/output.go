package model

// Failure kinds reported back to the caller of an event.
const (
	FailureInvalidOperatorIndex = "invalid_operator_index"
	FailureInvalidTriad         = "invalid_triad"
	FailureNoValidVoicing       = "no_valid_voicing"
	FailureBadChord             = "bad_chord"
	FailureUnknownRoot          = "unknown_root"
	FailureBadInput             = "bad_input"
)

type Failure struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type Identification struct {
	Name         string `json:"name"`
	Root         string `json:"root"`
	Quality      string `json:"quality"`
	Inversion    string `json:"inversion"`
	PitchClasses []int  `json:"pitch_classes"`
}

// Output is what the engine emits for a single event. Exactly one of the
// payload fields or Failure is set, except for operator selection which
// only reports Operator.
type Output struct {
	ID       string `json:"id"`
	Event    string `json:"event"`
	Operator string `json:"operator,omitempty"`

	Notes       Notes           `json:"notes,omitempty"`
	Progression []Notes         `json:"progression,omitempty"`
	Chord       *Identification `json:"chord,omitempty"`
	Unknown     bool            `json:"unknown,omitempty"`
	Tonic       *int            `json:"tonic,omitempty"`

	Failure *Failure `json:"failure,omitempty"`
}

func (o Output) Failed() bool {
	return o.Failure != nil
}
