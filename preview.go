package mvogen

import (
	"errors"
	"sync"
	"time"

	intaudio "github.com/cbegin/mvogen/internal/audio"
	intscore "github.com/cbegin/mvogen/internal/score"
	intsynth "github.com/cbegin/mvogen/internal/synth"
)

type PlayerOption func(*playerConfig)

type playerConfig struct {
	params intsynth.Params
}

// WithSynthParams overrides the preview synth envelope and gain.
func WithSynthParams(params intsynth.Params) PlayerOption {
	return func(cfg *playerConfig) { cfg.params = params }
}

// Player plays a score through the preview synth. Because every MVO note
// starts at time zero, playback is one chord that thins out as shorter
// notes release; it ends when the longest note has decayed.
type Player struct {
	mu         sync.Mutex
	sampleRate int
	params     intsynth.Params
	volume     float64
	audio      *intaudio.Player
	done       chan struct{}
}

func NewPlayer(sampleRate int, opts ...PlayerOption) (*Player, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	cfg := playerConfig{params: intsynth.DefaultParams()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Player{
		sampleRate: sampleRate,
		params:     cfg.params,
		volume:     1,
	}, nil
}

// Play starts playback of score, replacing any playback in progress.
func (p *Player) Play(score *intscore.Score) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.audio != nil {
		_ = p.audio.Stop()
	}

	params := p.params
	params.MasterGain *= p.volume
	renderer := intsynth.NewRenderer(score, p.sampleRate, params)
	backend, err := intaudio.NewPlayer(p.sampleRate, renderer)
	if err != nil {
		return err
	}
	p.audio = backend
	done := make(chan struct{})
	p.done = done
	backend.Play()

	// The watcher is the only closer of done, so a Stop racing a natural
	// end cannot double-close.
	go func() {
		tick := time.NewTicker(50 * time.Millisecond)
		defer tick.Stop()
		for range tick.C {
			if !backend.IsPlaying() {
				close(done)
				return
			}
		}
	}()
	return nil
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Pause()
	}
}

func (p *Player) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.audio != nil {
		p.audio.Play()
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

// Wait blocks until the current playback ends or is stopped. Returns
// immediately if nothing is playing.
func (p *Player) Wait() {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done != nil {
		<-done
	}
}

// SetMasterVolume sets the volume scalar applied to the next Play call.
// 1.0 is default.
func (p *Player) SetMasterVolume(volume float64) {
	if volume < 0 {
		volume = 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.volume = volume
}

func (p *Player) MasterVolume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.volume
}
