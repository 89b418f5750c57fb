package scene

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/cbegin/mvogen/internal/mvo"
)

type Builder struct{}

func NewBuilder() *Builder { return &Builder{} }

// Build maps records to solids in record order. A shape token other than
// sphere or cube skips the record silently; an unknown color name fails the
// build. Note the asymmetry with the score side, where unknown note tokens
// default instead of failing — both behaviors are kept distinct on purpose.
func (b *Builder) Build(records []mvo.Record) ([]Solid, error) {
	var solids []Solid
	for i, rec := range records {
		var kind Kind
		switch rec.Shape {
		case "sphere":
			kind = KindSphere
		case "cube":
			kind = KindCube
		default:
			continue
		}
		col, err := ResolveColor(rec.Color)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		solids = append(solids, Solid{
			Kind:     kind,
			Size:     rec.Size(),
			Color:    col,
			Position: rec.Position,
		})
	}
	return solids, nil
}

// ResolveColor looks a color name up in the SVG 1.1 named-color table.
// Lookup is case-insensitive. There is no fallback color; a miss is an
// error.
func ResolveColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
