package export

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"relief/internal/core"
)

func TestWritePGM(t *testing.T) {
	g, err := core.NewHeightGrid(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	copy(g.Cells(), []uint16{0, 1, 2, 30, 40, 50, 600, 700, 65535})

	var buf bytes.Buffer
	if err := WritePGM(&buf, g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "P2\n3 3\n65535\n0 1 2\n30 40 50\n600 700 65535\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestWritePGMFlatGridUsesUnitMax(t *testing.T) {
	g, err := core.NewHeightGrid(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePGM(&buf, g); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "P2\n3 3\n1\n0 0 0\n0 0 0\n0 0 0\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestWritePPM(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	img.SetRGBA(1, 0, color.RGBA{G: 128, A: 255})
	img.SetRGBA(0, 1, color.RGBA{B: 7, A: 255})
	img.SetRGBA(1, 1, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "P3\n2 2\n255\n255 0 0 0 128 0\n0 0 7 1 2 3\n"
	if buf.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestHeightImage(t *testing.T) {
	g, err := core.NewHeightGrid(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.Set(2, 1, 0x1234)
	img := HeightImage(g)
	if got := img.Gray16At(2, 1).Y; got != 0x1234 {
		t.Fatalf("expected 0x1234, got %#x", got)
	}
	if got := img.Gray16At(1, 2).Y; got != 0 {
		t.Fatalf("expected 0, got %#x", got)
	}
}
