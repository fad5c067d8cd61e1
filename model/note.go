package model

// NoteEvent is one generated note: a pitch and how many whole seconds
// it should sound. Immutable once sampled.
type NoteEvent struct {
	Pitch    uint8
	Duration int
}

// Note is a note placed on the time line. The sequence parser produces
// them, the encoder consumes them, and the decoder reconstructs them
// from the binary file.
type Note struct {
	OnsetSec    float64
	DurationSec float64
	Key         uint8
	Velocity    uint8
}
