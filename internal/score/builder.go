package score

import (
	"github.com/cbegin/mvogen/internal/mvo"
)

type Builder struct{ cfg Config }

func NewBuilder(cfg Config) *Builder { return &Builder{cfg: cfg} }

// Build assigns each record to the track of its instrument token, creating
// tracks in first-encounter order, and emits one note per record. The note
// key comes from the note table (unknown names fall back to middle C) and
// the beat count is the truncated size_duration. Records never fail here:
// the score side has no hard-error conditions past parsing.
func (b *Builder) Build(records []mvo.Record) *Score {
	s := &Score{Resolution: b.cfg.Resolution}
	trackIndex := make(map[string]int)
	for _, rec := range records {
		idx, ok := trackIndex[rec.Instrument]
		if !ok {
			idx = len(s.Tracks)
			trackIndex[rec.Instrument] = idx
			s.Tracks = append(s.Tracks, Track{
				Name:    rec.Instrument,
				Tempo:   b.cfg.Tempo,
				Program: b.cfg.Program,
			})
		}
		s.Tracks[idx].Notes = append(s.Tracks[idx].Notes, Note{
			Key:      NoteToMIDI(rec.Note),
			Velocity: b.cfg.Velocity,
			Beats:    rec.DurationBeats(),
		})
	}
	return s
}
