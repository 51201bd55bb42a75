package notation

import "errors"

var (
	ErrUnknownNote     = errors.New("unknown note")
	ErrUnknownDuration = errors.New("unknown duration")
)

// Rest is the pseudo-note for silence; it maps to frequency 0.
const Rest = "R"

// DefaultDuration is used when a token carries no duration suffix.
const DefaultDuration = "q"

// NoteEvent is one parsed token: one or more simultaneous note names and the
// duration symbol they share. Token keeps the raw input for diagnostics.
type NoteEvent struct {
	Token    string
	Notes    []string
	Duration string
}
