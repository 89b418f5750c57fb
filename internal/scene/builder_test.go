package scene

import (
	"testing"

	"github.com/cbegin/mvogen/internal/mvo"
)

func rec(shape, color string, size float64, pos [3]float64) mvo.Record {
	return mvo.Record{
		Instrument:   "piano",
		Shape:        shape,
		Note:         "C4",
		Color:        color,
		SizeDuration: size,
		Position:     pos,
		HasPosition:  true,
	}
}

func TestBuildScenario(t *testing.T) {
	records := []mvo.Record{
		rec("sphere", "red", 2.0, [3]float64{0, 0, 0}),
		rec("cube", "blue", 1.5, [3]float64{1, 1, 1}),
	}
	solids, err := NewBuilder().Build(records)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(solids) != 2 {
		t.Fatalf("expected 2 solids, got %d", len(solids))
	}
	sphere := solids[0]
	if sphere.Kind != KindSphere || sphere.Size != 2.0 || sphere.Position != [3]float64{0, 0, 0} {
		t.Fatalf("sphere wrong: %+v", sphere)
	}
	if sphere.Color.R != 255 || sphere.Color.G != 0 || sphere.Color.B != 0 {
		t.Fatalf("expected red sphere, got %+v", sphere.Color)
	}
	cube := solids[1]
	if cube.Kind != KindCube || cube.Size != 1.5 || cube.Position != [3]float64{1, 1, 1} {
		t.Fatalf("cube wrong: %+v", cube)
	}
	if cube.Color.B != 255 || cube.Color.R != 0 || cube.Color.G != 0 {
		t.Fatalf("expected blue cube, got %+v", cube.Color)
	}
}

func TestBuildSkipsUnknownShape(t *testing.T) {
	records := []mvo.Record{
		rec("pyramid", "red", 1, [3]float64{0, 0, 0}),
	}
	solids, err := NewBuilder().Build(records)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(solids) != 0 {
		t.Fatalf("expected unknown shape to be skipped, got %d solids", len(solids))
	}
}

func TestBuildSkipsUnresolvedShape(t *testing.T) {
	// No underscore in instrument_shape leaves Shape empty; the record
	// contributes nothing, and its color is never resolved.
	records := []mvo.Record{
		rec("", "nosuchcolor", 1, [3]float64{0, 0, 0}),
	}
	solids, err := NewBuilder().Build(records)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(solids) != 0 {
		t.Fatalf("expected 0 solids, got %d", len(solids))
	}
}

func TestBuildUnknownColorFails(t *testing.T) {
	records := []mvo.Record{
		rec("sphere", "nosuchcolor", 1, [3]float64{0, 0, 0}),
	}
	if _, err := NewBuilder().Build(records); err == nil {
		t.Fatalf("expected unknown color to fail the build")
	}
}

func TestBuildPreservesRecordOrder(t *testing.T) {
	records := []mvo.Record{
		rec("sphere", "red", 1, [3]float64{0, 0, 0}),
		rec("pyramid", "red", 1, [3]float64{5, 5, 5}),
		rec("cube", "blue", 1, [3]float64{1, 2, 3}),
	}
	solids, err := NewBuilder().Build(records)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(solids) != 2 {
		t.Fatalf("expected 2 solids, got %d", len(solids))
	}
	if solids[0].Kind != KindSphere || solids[1].Kind != KindCube {
		t.Fatalf("solids out of record order: %+v", solids)
	}
}

func TestBuildSizeNotTruncated(t *testing.T) {
	records := []mvo.Record{rec("sphere", "red", 1.9, [3]float64{0, 0, 0})}
	solids, err := NewBuilder().Build(records)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if solids[0].Size != 1.9 {
		t.Fatalf("expected spatial size 1.9 untruncated, got %v", solids[0].Size)
	}
}

func TestResolveColorCaseInsensitive(t *testing.T) {
	a, err := ResolveColor("Red")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	b, err := ResolveColor("red")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if a != b {
		t.Fatalf("expected case-insensitive lookup, got %+v and %+v", a, b)
	}
}
