package scene

import "image/color"

type Kind int

const (
	KindSphere Kind = iota + 1
	KindCube
)

// Solid is one positioned, sized, colored primitive. Size is the sphere
// radius or the cube edge length (all three edges equal).
type Solid struct {
	Kind     Kind
	Size     float64
	Color    color.RGBA
	Position [3]float64
}
