package mvo

// Field keys with typed coercion or compound splitting. Every other key is
// kept verbatim in Record.Fields.
const (
	KeyInstrumentShape = "instrument_shape"
	KeyNoteColor       = "note_color"
	KeySizeDuration    = "size_duration"
	KeyPosition        = "position"
)

// Record is one begin_object/end_object block. The compound tokens
// instrument_shape and note_color are split on their first underscore at
// parse time; a missing underscore leaves the second component empty, which
// downstream builders treat as unresolved.
type Record struct {
	Instrument string
	Shape      string
	Note       string
	Color      string

	SizeDuration float64
	Position     [3]float64
	HasPosition  bool

	// Fields holds every string-valued key verbatim, including the raw
	// compound tokens. Unknown keys pass through here untouched.
	Fields map[string]string
}

// DurationBeats is the musical reading of size_duration: a truncated beat
// count. 1.9 is a 1-beat note; 0.1 is a 0-beat note.
func (r Record) DurationBeats() int {
	return int(r.SizeDuration)
}

// Size is the spatial reading of size_duration: radius or edge length,
// used as-is.
func (r Record) Size() float64 {
	return r.SizeDuration
}
