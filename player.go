package notewave

import (
	"sync"

	intaudio "github.com/cbegin/notewave-go/internal/audio"
)

// Player plays rendered buffers on the system audio device. The zero-ish
// value from NewPlayer is ready to use; Play replaces any playback already
// in progress.
type Player struct {
	mu    sync.Mutex
	audio *intaudio.Player
}

func NewPlayer() *Player { return &Player{} }

// Play starts playback of a rendered buffer and returns immediately.
// Use Wait to block until it completes.
func (p *Player) Play(samples []int16) error {
	backend, err := intaudio.NewPlayer(SampleRate, samples)
	if err != nil {
		return err
	}
	p.mu.Lock()
	if p.audio != nil {
		_ = p.audio.Stop()
	}
	p.audio = backend
	p.mu.Unlock()
	backend.Play()
	return nil
}

// Wait blocks until the current playback ends. It returns immediately if
// nothing is playing.
func (p *Player) Wait() {
	p.mu.Lock()
	backend := p.audio
	p.mu.Unlock()
	if backend != nil {
		backend.Wait()
	}
}

func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio == nil {
		return nil
	}
	err := p.audio.Stop()
	p.audio = nil
	return err
}
