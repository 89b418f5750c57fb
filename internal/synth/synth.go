package synth

import (
	"math"

	intscore "github.com/cbegin/mvogen/internal/score"
)

const twoPi = math.Pi * 2

type Params struct {
	AttackSec  float64
	ReleaseSec float64
	MasterGain float64
}

func DefaultParams() Params {
	return Params{
		AttackSec:  0.005,
		ReleaseSec: 0.25,
		MasterGain: 0.8,
	}
}

// voice is one sounding note: a sine at the note's frequency, held for the
// note's beat count, then released. All MVO notes start at frame zero, so a
// voice has no start offset.
type voice struct {
	phase         float64
	inc           float64
	amp           float64
	attackFrames  int
	sustainFrames int
	releaseFrames int
}

func (v *voice) sample(frame int) float64 {
	env := 0.0
	switch {
	case frame < v.attackFrames:
		env = float64(frame) / float64(v.attackFrames)
	case frame < v.attackFrames+v.sustainFrames:
		env = 1
	case frame < v.attackFrames+v.sustainFrames+v.releaseFrames:
		rel := frame - v.attackFrames - v.sustainFrames
		env = 1 - float64(rel)/float64(v.releaseFrames)
	default:
		return 0
	}
	s := math.Sin(v.phase) * v.amp * env
	v.phase += v.inc
	if v.phase >= twoPi {
		v.phase -= twoPi
	}
	return s
}

// Renderer turns a score into stereo float32 samples. Because every note
// starts at time zero the result is a single chord whose components decay
// as their beat counts elapse; there is nothing to sequence.
type Renderer struct {
	sampleRate  int
	params      Params
	voices      []voice
	frame       int
	totalFrames int
}

func NewRenderer(s *intscore.Score, sampleRate int, params Params) *Renderer {
	r := &Renderer{sampleRate: sampleRate, params: params}
	attack := int(params.AttackSec * float64(sampleRate))
	if attack < 1 {
		attack = 1
	}
	release := int(params.ReleaseSec * float64(sampleRate))
	if release < 1 {
		release = 1
	}
	for _, tr := range s.Tracks {
		secPerBeat := 0.5
		if tr.Tempo > 0 {
			secPerBeat = 60 / tr.Tempo
		}
		for _, note := range tr.Notes {
			sustain := int(float64(note.Beats) * secPerBeat * float64(sampleRate))
			r.voices = append(r.voices, voice{
				inc:           twoPi * keyToFreq(note.Key) / float64(sampleRate),
				amp:           float64(note.Velocity) / 127,
				attackFrames:  attack,
				sustainFrames: sustain,
				releaseFrames: release,
			})
			if total := attack + sustain + release; total > r.totalFrames {
				r.totalFrames = total
			}
		}
	}
	return r
}

// Process fills dst with interleaved stereo samples. Past the end of the
// longest voice it writes silence; Finished then reports true.
func (r *Renderer) Process(dst []float32) {
	norm := r.params.MasterGain
	if n := len(r.voices); n > 1 {
		norm /= math.Sqrt(float64(n))
	}
	for i := 0; i+1 < len(dst); i += 2 {
		sum := 0.0
		for vi := range r.voices {
			sum += r.voices[vi].sample(r.frame)
		}
		s := float32(sum * norm)
		dst[i] = s
		dst[i+1] = s
		r.frame++
	}
}

func (r *Renderer) Finished() bool {
	return r.frame >= r.totalFrames
}

// Frames returns the total render length in frames.
func (r *Renderer) Frames() int {
	return r.totalFrames
}

// Duration returns the total render length in seconds.
func (r *Renderer) Duration() float64 {
	return float64(r.totalFrames) / float64(r.sampleRate)
}

func keyToFreq(key uint8) float64 {
	return 440 * math.Pow(2, (float64(key)-69)/12)
}
