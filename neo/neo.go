package neo

import (
	"strings"

	"github.com/jsphweid/triadex/chord"
	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/pitch"
	"github.com/jsphweid/triadex/util"
	"github.com/jsphweid/triadex/voicing"
	"github.com/pkg/errors"
)

var (
	ErrInvalidOperatorIndex = errors.New("invalid operator index")
	ErrUnknownOperator      = errors.New("unknown operator")
)

type Operator int

const (
	P Operator = iota
	L
	R
)

var Operators = []Operator{P, L, R}

var operatorLabels = map[Operator]string{
	P: "P",
	L: "L",
	R: "R",
}

func (op Operator) String() string {
	if s, ok := operatorLabels[op]; ok {
		return s
	}
	return "?"
}

// ParseOperator accepts "P", "L" or "R" in any case.
func ParseOperator(s string) (Operator, error) {
	label := strings.ToUpper(strings.TrimSpace(s))
	for _, op := range Operators {
		if operatorLabels[op] == label {
			return op, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownOperator, "%q", s)
}

// ParseOperators reads a chain such as "PLR", "p,l,r" or "P L R".
func ParseOperators(s string) ([]Operator, error) {
	var res []Operator
	for _, r := range s {
		if r == ',' || r == ' ' || r == '-' {
			continue
		}
		op, err := ParseOperator(string(r))
		if err != nil {
			return nil, err
		}
		res = append(res, op)
	}
	return res, nil
}

// semitone deltas applied to root, third and fifth
type delta [constants.TriadSize]int

type rule struct {
	fromMajor delta
	fromMinor delta
}

var rules = map[Operator]rule{
	P: {fromMajor: delta{0, -1, 0}, fromMinor: delta{0, 1, 0}},
	L: {fromMajor: delta{-1, 0, 0}, fromMinor: delta{0, 0, 1}},
	R: {fromMajor: delta{0, 0, 2}, fromMinor: delta{-2, 0, 0}},
}

var thirds = map[chord.Quality]int{
	chord.Major: 4,
	chord.Minor: 3,
}

const fifth = 7

// Transformer holds the currently selected operator. The zero value
// selects P.
type Transformer struct {
	op Operator
}

func NewTransformer() *Transformer {
	return &Transformer{op: P}
}

func (t *Transformer) Operator() Operator {
	return t.op
}

// Select picks the operator by its index in Operators. An out of range
// index leaves the selection unchanged.
func (t *Transformer) Select(index int) error {
	if index < 0 || index >= len(Operators) {
		return errors.Wrapf(ErrInvalidOperatorIndex, "expected an index below %d, found %d", len(Operators), index)
	}
	t.op = Operators[index]
	return nil
}

// Apply transforms a three-note chord with the selected operator and voices
// the result against the original.
func (t *Transformer) Apply(notes []int) (voicing.Voicing, error) {
	return ApplyOperator(t.op, notes)
}

func ApplyOperator(op Operator, notes []int) (voicing.Voicing, error) {
	pcs, err := triadClasses(notes)
	if err != nil {
		return voicing.Voicing{}, err
	}
	targets, err := Targets(pcs, op)
	if err != nil {
		return voicing.Voicing{}, err
	}
	return voicing.Voice(targets, notes)
}

// Targets returns the new root, third and fifth for a major or minor
// triad.
func Targets(pcs [constants.TriadSize]pitch.PitchClass, op Operator) ([constants.TriadSize]pitch.PitchClass, error) {
	var res [constants.TriadSize]pitch.PitchClass

	r, ok := rules[op]
	if !ok {
		return res, errors.Wrapf(ErrUnknownOperator, "%d", op)
	}

	triad, err := chord.ClassifyRoot(pcs)
	if err != nil {
		return res, err
	}
	third, ok := thirds[triad.Quality]
	if !ok {
		return res, errors.Wrapf(chord.ErrInvalidTriad, "%s is neither major nor minor", triad.Name())
	}

	d := r.fromMajor
	if triad.Quality == chord.Minor {
		d = r.fromMinor
	}

	tones := [constants.TriadSize]pitch.PitchClass{triad.Root, triad.Root.Add(third), triad.Root.Add(fifth)}
	for i, tone := range tones {
		res[i] = tone.Add(d[i])
	}
	return res, nil
}

// Chain applies ops one after another, voicing each step against the
// previous one. The first element of the result is the first transformed
// chord, not the input. The input must be a triad and ops must not be
// empty.
func Chain(notes []int, ops []Operator) ([]voicing.Voicing, error) {
	if _, err := triadClasses(notes); err != nil {
		return nil, err
	}
	if len(ops) == 0 {
		return nil, errors.Wrap(ErrUnknownOperator, "no operators given")
	}
	current := notes
	res := make([]voicing.Voicing, 0, len(ops))
	for i, op := range ops {
		v, err := ApplyOperator(op, current)
		if err != nil {
			return nil, errors.Wrapf(err, "step %d (%s)", i+1, op)
		}
		res = append(res, v)
		current = v.Notes()
	}
	return res, nil
}

func triadClasses(notes []int) ([constants.TriadSize]pitch.PitchClass, error) {
	var pcs [constants.TriadSize]pitch.PitchClass
	if len(notes) != constants.TriadSize {
		return pcs, errors.Wrapf(chord.ErrInvalidTriad, "only triads supported but found %d notes", len(notes))
	}
	if unique := util.UniqueSorted(pitch.Classes(notes)); len(unique) != constants.TriadSize {
		return pcs, errors.Wrapf(chord.ErrInvalidTriad, "expected %d unique pitch classes, found %d", constants.TriadSize, len(unique))
	}
	copy(pcs[:], pitch.Classes(notes))
	return pcs, nil
}
