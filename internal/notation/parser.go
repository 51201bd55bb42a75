package notation

import (
	"fmt"
	"sort"
	"strings"
)

// Frequencies for 4th-octave notes, sharps (#) and flats (b) included.
var pitches = map[string]float64{
	"C": 261.63, "C#": 277.18, "Db": 277.18,
	"D": 293.66, "D#": 311.13, "Eb": 311.13,
	"E": 329.63,
	"F": 349.23, "F#": 369.99, "Gb": 369.99,
	"G": 392.00, "G#": 415.30, "Ab": 415.30,
	"A": 440.00, "A#": 466.16, "Bb": 466.16,
	"B": 493.88,
	Rest: 0,
}

// Duration symbols in beats at 60 BPM.
var beats = map[string]float64{
	"w":  4,       // whole
	"h":  2,       // half
	"q":  1,       // quarter
	"dq": 1.5,     // dotted quarter
	"e":  0.5,     // eighth
	"s":  0.25,    // sixteenth
	"t":  1.0 / 3, // triplet
}

// durationsByLength orders symbols longest first so suffix matching prefers
// "dq" over "q".
var durationsByLength = func() []string {
	syms := make([]string, 0, len(beats))
	for sym := range beats {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool {
		if len(syms[i]) != len(syms[j]) {
			return len(syms[i]) > len(syms[j])
		}
		return syms[i] < syms[j]
	})
	return syms
}()

// Frequency returns the pitch of a note name in Hz. The rest note has
// frequency 0.
func Frequency(note string) (float64, error) {
	freq, ok := pitches[note]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownNote, note)
	}
	return freq, nil
}

// Tempo maps duration symbols to seconds at a given BPM. Each render call
// derives its own Tempo; there is no shared tempo state.
type Tempo map[string]float64

func NewTempo(bpm float64) Tempo {
	factor := 60 / bpm
	t := make(Tempo, len(beats))
	for sym, b := range beats {
		t[sym] = b * factor
	}
	return t
}

// Seconds resolves a duration symbol to its length in seconds.
func (t Tempo) Seconds(symbol string) (float64, error) {
	sec, ok := t[symbol]
	if !ok {
		return 0, fmt.Errorf("%w %q", ErrUnknownDuration, symbol)
	}
	return sec, nil
}

// ParseToken splits one whitespace-delimited token into note names and a
// duration symbol. The longest known duration symbol that suffixes the token
// wins; with no match the quarter duration applies and the whole token is the
// notes portion. A [bracketed] portion is a chord of simultaneous notes, an
// empty portion is a rest, and a letter followed by # or b is an accidental.
//
// Malformed bracket strings are deliberately not validated: the portion falls
// through to single-note parsing, stray brackets and all, and lookup fails
// later with an unknown-note error.
func ParseToken(token string) NoteEvent {
	token = strings.TrimSpace(token)
	duration := ""
	notesPart := token
	for _, sym := range durationsByLength {
		if strings.HasSuffix(token, sym) {
			duration = sym
			notesPart = token[:len(token)-len(sym)]
			break
		}
	}
	if duration == "" {
		duration = DefaultDuration
	}

	var notes []string
	switch {
	case strings.HasPrefix(notesPart, "[") && strings.HasSuffix(notesPart, "]"):
		notes = splitChord(notesPart[1 : len(notesPart)-1])
	case notesPart == "":
		notes = []string{Rest}
	case len(notesPart) > 1 && isAccidental(notesPart[1]):
		notes = []string{notesPart[:2]}
	default:
		notes = []string{notesPart}
	}
	return NoteEvent{Token: token, Notes: notes, Duration: duration}
}

func splitChord(s string) []string {
	var notes []string
	for i := 0; i < len(s); {
		if i+1 < len(s) && isAccidental(s[i+1]) {
			notes = append(notes, s[i:i+2])
			i += 2
		} else {
			notes = append(notes, s[i:i+1])
			i++
		}
	}
	return notes
}

func isAccidental(c byte) bool { return c == '#' || c == 'b' }
