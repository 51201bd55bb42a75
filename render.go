// Package notewave turns a compact textual music notation into mono PCM
// audio. Tokens like "Cq", "Ebh" or "[CEG]w" name one note or a bracketed
// chord plus a duration suffix; Render synthesizes each token as pure sine
// tones, mixes chords, and concatenates the result into one buffer that a
// host can play (Player) or write out (ExportWAV).
package notewave

import (
	"errors"
	"fmt"

	intnote "github.com/cbegin/notewave-go/internal/notation"
	intsynth "github.com/cbegin/notewave-go/internal/synth"
)

// SampleRate is the fixed output rate of all rendered audio.
const SampleRate = 44100

var ErrInvalidVolume = errors.New("volume must be between 0 and 1")

type RenderOption func(*renderConfig)

type renderConfig struct {
	diagnostic func(string)
}

// WithDiagnostic installs a callback for non-fatal render diagnostics, such
// as tokens skipped for an unknown duration symbol. The default discards them.
func WithDiagnostic(fn func(msg string)) RenderOption {
	return func(cfg *renderConfig) {
		cfg.diagnostic = fn
	}
}

// Render converts notation tokens into one mono int16 PCM buffer at
// SampleRate. Tokens render in order at bpm beats per minute with the given
// volume scalar; chord notes are mixed with saturation clipping.
//
// A token whose duration cannot be resolved is skipped with a diagnostic and
// rendering continues. An unknown note name fails the whole render: no
// partial buffer is returned. Volume outside [0,1] is rejected before any
// work happens. Rendering is deterministic; identical inputs produce
// identical buffers.
func Render(tokens []string, bpm, volume float64, opts ...RenderOption) ([]int16, error) {
	if volume < 0 || volume > 1 {
		return nil, ErrInvalidVolume
	}
	cfg := renderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	events := make([]intnote.NoteEvent, 0, len(tokens))
	for _, token := range tokens {
		events = append(events, intnote.ParseToken(token))
	}
	return render(events, intnote.NewTempo(bpm), volume, cfg.diagnostic)
}

func render(events []intnote.NoteEvent, tempo intnote.Tempo, volume float64, diag func(string)) ([]int16, error) {
	segments := make([][]int16, 0, len(events))
	for _, ev := range events {
		seconds, err := tempo.Seconds(ev.Duration)
		if err != nil {
			if diag != nil {
				diag(fmt.Sprintf("skipping token %q: %v", ev.Token, err))
			}
			continue
		}
		chord := make([][]int16, 0, len(ev.Notes))
		for _, note := range ev.Notes {
			freq, err := intnote.Frequency(note)
			if err != nil {
				return nil, fmt.Errorf("token %q: %w", ev.Token, err)
			}
			chord = append(chord, intsynth.Tone(SampleRate, freq, seconds, volume))
		}
		segments = append(segments, intsynth.Mix(chord))
	}
	return intsynth.Concat(segments), nil
}
