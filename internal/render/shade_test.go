package render

import (
	"image/color"
	"testing"

	"relief/internal/core"
)

type flatPicker color.RGBA

func (p flatPicker) Pick(uint16, float64) color.RGBA { return color.RGBA(p) }

// quarterLight makes the shading divisor exactly 4.
const quarterLight = core.MaxElevation / 4.0

func TestShade(t *testing.T) {
	base := color.RGBA{R: 200, G: 100, B: 50, A: 255}

	if got := Shade(base, 0, false, quarterLight); got != base {
		t.Fatalf("expected flat terrain to stay unshaded, got %v", got)
	}
	if got := Shade(base, 2, false, quarterLight); got != (color.RGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Fatalf("expected half darkening, got %v", got)
	}
	if got := Shade(base, -2, false, quarterLight); got != (color.RGBA{R: 227, G: 177, B: 152, A: 255}) {
		t.Fatalf("expected half brightening, got %v", got)
	}
	if got := Shade(base, 6, true, quarterLight); got != (color.RGBA{R: 100, G: 50, B: 25, A: 255}) {
		t.Fatalf("expected underwater shading to be a third as strong, got %v", got)
	}
	if got := Shade(base, 1000, false, quarterLight); got != (color.RGBA{A: 255}) {
		t.Fatalf("expected factor to clamp at full darkness, got %v", got)
	}
	if got := Shade(base, -1000, false, quarterLight); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("expected factor to clamp at full brightness, got %v", got)
	}
	if got := Shade(base, 5000, false, 0); got != base {
		t.Fatalf("expected zero light level to disable shading, got %v", got)
	}
}

func TestRendererShadingAndWater(t *testing.T) {
	g, err := core.NewHeightGrid(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range g.Cells() {
		g.Cells()[i] = 1000
	}
	g.Set(1, 0, 1002)

	gray := color.RGBA{R: 100, G: 100, B: 100, A: 255}
	river := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	water := make([]bool, 9)
	water[g.Index(1, 1)] = true

	r := &Renderer{
		Picker:     flatPicker(gray),
		LightLevel: quarterLight,
		Water:      water,
		RiverColor: river,
	}
	img := r.Render(g)

	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 3 {
		t.Fatalf("expected 3x3 image, got %v", b)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 50, G: 50, B: 50, A: 255}) {
		t.Fatalf("expected (0,0) darkened by the raised right neighbour, got %v", got)
	}
	if got := img.RGBAAt(1, 1); got != river {
		t.Fatalf("expected water cell to use the river colour, got %v", got)
	}
	if got := img.RGBAAt(2, 1); got != gray {
		t.Fatalf("expected right edge to stay unshaded, got %v", got)
	}
	if got := img.RGBAAt(1, 2); got != gray {
		t.Fatalf("expected bottom edge to stay unshaded, got %v", got)
	}
}

func TestFillSeaMaskRGBA(t *testing.T) {
	cells := []uint16{10, 500, 20}
	buf := make([]byte, 4*len(cells))
	tint := color.RGBA{R: 64, G: 164, B: 223, A: 120}
	FillSeaMaskRGBA(buf, cells, 100, tint)
	if buf[0] != 64 || buf[3] != 120 {
		t.Fatalf("expected sea cell tinted, got %v", buf[0:4])
	}
	if buf[7] != 0 {
		t.Fatalf("expected land cell transparent, got alpha %d", buf[7])
	}
}

func TestFillElevationRGBA(t *testing.T) {
	cells := []uint16{0, 500, 1000}
	buf := make([]byte, 4*len(cells))
	FillElevationRGBA(buf, cells, 1000, 255)
	want := []byte{0, 0, 0, 255, 127, 127, 127, 255, 255, 255, 255, 255}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, buf)
		}
	}

	FillElevationRGBA(buf, []uint16{0, 0, 0}, 0, 255)
	if buf[4] != 0 || buf[7] != 255 {
		t.Fatalf("flat grid should stay black and opaque, got %v", buf)
	}
}
