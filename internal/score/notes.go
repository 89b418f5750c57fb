package score

// noteNumbers maps the diatonic note names the MVO format carries to MIDI
// key numbers (middle C = 60). No sharps or flats, no octaves outside
// C4..F5. Initialized once, never altered at runtime.
var noteNumbers = map[string]uint8{
	"C4": 60, "D4": 62, "E4": 64, "F4": 65,
	"G4": 67, "A4": 69, "B4": 71,
	"C5": 72, "D5": 74, "E5": 76, "F5": 77,
}

// middleC is the silent default for note tokens outside the table.
const middleC uint8 = 60

// NoteToMIDI resolves a note name to its MIDI key. Unknown or empty tokens
// resolve to middle C; that is a documented default, not an error.
func NoteToMIDI(note string) uint8 {
	if key, ok := noteNumbers[note]; ok {
		return key
	}
	return middleC
}
