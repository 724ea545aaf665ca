package model

type Notes = []int

// Chord is a set of notes sounding together at some point in a MIDI file.
type Chord struct {
	// microseconds from the start of the file
	Offset int64
	Notes  Notes

	// NOTE: true when the chord appeared because a key was pressed
	// rather than released
	FormedByNoteOn bool
}
