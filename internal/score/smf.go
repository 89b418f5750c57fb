package score

import (
	"io"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// timed pairs an absolute tick with an encoded message. SMF tracks carry
// delta times, so per-track events are collected absolute, stable-sorted,
// and converted on the way out.
type timed struct {
	tick uint32
	msg  []byte
}

// Encode turns a Score into a format-1 standard MIDI file: one SMF track per
// instrument track, each opening with its name, tempo, and a program change,
// followed by the note on/off pairs. All notes start at tick zero; a
// zero-beat note closes at the tick it opens.
func (b *Builder) Encode(s *Score) *smf.SMF {
	out := smf.New()
	out.TimeFormat = smf.MetricTicks(s.Resolution)
	ch := b.cfg.Channel
	for _, track := range s.Tracks {
		events := []timed{
			{0, smf.MetaTrackSequenceName(track.Name)},
			{0, smf.MetaTempo(track.Tempo)},
			{0, midi.ProgramChange(ch, track.Program)},
		}
		for _, note := range track.Notes {
			beats := note.Beats
			if beats < 0 {
				beats = 0
			}
			off := uint32(beats) * uint32(s.Resolution)
			events = append(events,
				timed{0, midi.NoteOn(ch, note.Key, note.Velocity)},
				timed{off, midi.NoteOff(ch, note.Key)},
			)
		}
		sort.SliceStable(events, func(i, j int) bool {
			return events[i].tick < events[j].tick
		})
		var tr smf.Track
		last := uint32(0)
		for _, ev := range events {
			tr.Add(ev.tick-last, ev.msg)
			last = ev.tick
		}
		tr.Close(0)
		out.Add(tr)
	}
	return out
}

// WriteFile encodes the score and writes it to path.
func (b *Builder) WriteFile(s *Score, path string) error {
	return b.Encode(s).WriteFile(path)
}

// WriteTo encodes the score and writes it to w.
func (b *Builder) WriteTo(s *Score, w io.Writer) (int64, error) {
	return b.Encode(s).WriteTo(w)
}
