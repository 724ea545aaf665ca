package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/triadex/model"
)

var (
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	notesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type failureError struct {
	model.Failure
}

func (f failureError) Error() string {
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

func checkOutput(out model.Output) error {
	if out.Failed() {
		return failureError{*out.Failure}
	}
	return nil
}

func formatNotes(notes model.Notes) string {
	parts := make([]string, len(notes))
	for i, n := range notes {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " ")
}

// describeChord is the identify message: "<name> <inversion>" or "unknown".
func describeChord(out model.Output) string {
	if out.Chord == nil {
		return "unknown"
	}
	return out.Chord.Name + " " + out.Chord.Inversion
}

func printChord(w io.Writer, out model.Output) {
	if out.Chord == nil {
		fmt.Fprintln(w, faintStyle.Render(describeChord(out)))
		return
	}
	fmt.Fprintln(w, nameStyle.Render(out.Chord.Name)+" "+out.Chord.Inversion)
}

func printNotes(w io.Writer, notes model.Notes) {
	fmt.Fprintln(w, notesStyle.Render(formatNotes(notes)))
}
