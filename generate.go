package mvogen

import (
	"encoding/binary"
	"math"

	intmvo "github.com/cbegin/mvogen/internal/mvo"
	intscene "github.com/cbegin/mvogen/internal/scene"
	intscore "github.com/cbegin/mvogen/internal/score"
	intsynth "github.com/cbegin/mvogen/internal/synth"
)

// Compile parses MVO text into object records.
func Compile(input string) ([]intmvo.Record, error) {
	return intmvo.NewParser().Parse(input)
}

// CompileFile parses the MVO file at path into object records.
func CompileFile(path string) ([]intmvo.Record, error) {
	return intmvo.NewParser().ParseFile(path)
}

type Option func(*Generator)

func WithScoreConfig(cfg intscore.Config) Option {
	return func(g *Generator) { g.score = cfg }
}

func WithViewerConfig(cfg intscene.ViewerConfig) Option {
	return func(g *Generator) { g.viewer = cfg }
}

// Generator projects parsed records into the musical and spatial domains.
// The two projections are independent; either can run without the other.
type Generator struct {
	score  intscore.Config
	viewer intscene.ViewerConfig
}

func New(opts ...Option) *Generator {
	g := &Generator{
		score:  intscore.DefaultConfig(),
		viewer: intscene.DefaultViewerConfig(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) BuildScore(records []intmvo.Record) *intscore.Score {
	return intscore.NewBuilder(g.score).Build(records)
}

// WriteMIDIFile builds the score and writes it to path as a format-1
// standard MIDI file.
func (g *Generator) WriteMIDIFile(records []intmvo.Record, path string) error {
	b := intscore.NewBuilder(g.score)
	return b.WriteFile(b.Build(records), path)
}

func (g *Generator) BuildScene(records []intmvo.Record) ([]intscene.Solid, error) {
	return intscene.NewBuilder().Build(records)
}

// ShowScene opens the interactive viewer and blocks until it is closed.
func (g *Generator) ShowScene(solids []intscene.Solid) {
	intscene.Show(solids, g.viewer)
}

// RenderPreviewSamples renders the whole score through the preview synth and
// returns interleaved stereo samples.
func RenderPreviewSamples(score *intscore.Score, sampleRate int) []float32 {
	r := intsynth.NewRenderer(score, sampleRate, intsynth.DefaultParams())
	out := make([]float32, r.Frames()*2)
	r.Process(out)
	return out
}

// EncodeWAVFloat32LE wraps interleaved float32 samples in a WAV container.
func EncodeWAVFloat32LE(samples []float32, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}
