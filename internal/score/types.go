package score

// Note is one note event. Every MVO note starts at beat zero; Beats is the
// truncated size_duration.
type Note struct {
	Key      uint8
	Velocity uint8
	Beats    int
}

// Track groups the notes of one instrument. Tracks are created in
// first-encounter order of their instrument token.
type Track struct {
	Name    string
	Tempo   float64
	Program uint8
	Notes   []Note
}

// Score is the multi-track timeline handed to the MIDI writer.
type Score struct {
	Resolution int // ticks per beat
	Tracks     []Track
}

type Config struct {
	Resolution int
	Tempo      float64
	Velocity   uint8
	Program    uint8
	Channel    uint8
}

func DefaultConfig() Config {
	return Config{
		Resolution: 960,
		Tempo:      120,
		Velocity:   100,
		Program:    1,
		Channel:    0,
	}
}
