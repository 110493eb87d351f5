package terrain

import (
	"slices"
	"testing"

	"relief/internal/core"
)

func TestSmoothFactorOneIsNoop(t *testing.T) {
	g := newGrid(t, 32)
	gen := &Generator{Roughness: 0.8, Source: core.NewRNG(5)}
	gen.Run(g, [4]uint16{1000, 50000, 20000, 60000})
	before := append([]uint16(nil), g.Cells()...)

	Smooth(g, 1, 4)

	if !slices.Equal(before, g.Cells()) {
		t.Fatal("smoothing with factor 1 changed the grid")
	}
}

func TestSmoothSweepsInPlace(t *testing.T) {
	g := newGrid(t, 2)
	g.Set(1, 1, 1000)

	Smooth(g, 0.5, 1)

	want := []uint16{
		34, 70, 46,
		69, 140, 93,
		46, 93, 62,
	}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("unexpected grid after one pass:\n got %v\nwant %v", g.Cells(), want)
	}
}

func TestSmoothFactorZeroCopiesNeighbour(t *testing.T) {
	g := newGrid(t, 8)
	for i := range g.Cells() {
		g.Cells()[i] = uint16(i * 97)
	}
	g.Set(0, 0, 777)

	Smooth(g, 0, 1)

	for i, v := range g.Cells() {
		if v != 777 {
			t.Fatalf("cell %d: expected full neighbour replacement to spread 777, got %d", i, v)
		}
	}
}

func TestSmoothZeroPasses(t *testing.T) {
	g := newGrid(t, 4)
	g.Set(2, 2, 5000)
	before := append([]uint16(nil), g.Cells()...)
	Smooth(g, 0.3, 0)
	if !slices.Equal(before, g.Cells()) {
		t.Fatal("zero passes changed the grid")
	}
}
