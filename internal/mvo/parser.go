package mvo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	beginMarker = "begin_object"
	endMarker   = "end_object"
)

type Parser struct{}

func NewParser() *Parser { return &Parser{} }

// ParseFile reads path and parses it as MVO text.
func (p *Parser) ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(data))
}

// Parse scans MVO text line by line and returns the object records in
// end_object encounter order. An open block at end of input is dropped, not
// flushed; begin_object inside an open block discards what the open block
// accumulated. Empty blocks yield no record. Non-numeric position or
// size_duration values fail the whole parse.
func (p *Parser) Parse(input string) ([]Record, error) {
	var records []Record
	var cur *accumulator

	sc := bufio.NewScanner(strings.NewReader(input))
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == beginMarker:
			cur = newAccumulator()
		case line == endMarker:
			if cur != nil && !cur.empty() {
				records = append(records, cur.finish())
			}
			cur = nil
		case strings.Contains(line, ": "):
			if cur == nil {
				continue
			}
			key, value, _ := strings.Cut(line, ": ")
			if err := cur.set(key, value); err != nil {
				return nil, fmt.Errorf("line %d: %w", ln, err)
			}
		default:
			// Blank lines and lines without a key separator are ignored.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// accumulator collects fields for the block currently open. finish produces
// an independent Record so later blocks cannot alias earlier ones.
type accumulator struct {
	fields      map[string]string
	size        float64
	position    [3]float64
	hasSize     bool
	hasPosition bool
}

func newAccumulator() *accumulator {
	return &accumulator{fields: make(map[string]string)}
}

func (a *accumulator) empty() bool {
	return len(a.fields) == 0 && !a.hasSize && !a.hasPosition
}

func (a *accumulator) set(key, value string) error {
	switch key {
	case KeyPosition:
		pos, err := parsePosition(value)
		if err != nil {
			return err
		}
		a.position = pos
		a.hasPosition = true
	case KeySizeDuration:
		v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("size_duration %q is not numeric", value)
		}
		a.size = v
		a.hasSize = true
	default:
		a.fields[key] = value
	}
	return nil
}

func (a *accumulator) finish() Record {
	rec := Record{
		SizeDuration: a.size,
		Position:     a.position,
		HasPosition:  a.hasPosition,
		Fields:       make(map[string]string, len(a.fields)),
	}
	for k, v := range a.fields {
		rec.Fields[k] = v
	}
	rec.Instrument, rec.Shape = splitCompound(rec.Fields[KeyInstrumentShape])
	rec.Note, rec.Color = splitCompound(rec.Fields[KeyNoteColor])
	return rec
}

func parsePosition(value string) ([3]float64, error) {
	var pos [3]float64
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return pos, fmt.Errorf("position %q wants 3 components, got %d", value, len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return pos, fmt.Errorf("position component %q is not numeric", part)
		}
		pos[i] = v
	}
	return pos, nil
}

// splitCompound cuts a compound token on its first underscore. Without an
// underscore the whole token is the first component and the second is empty.
func splitCompound(token string) (string, string) {
	first, second, _ := strings.Cut(token, "_")
	return first, second
}
