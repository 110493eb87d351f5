package render

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"relief/internal/core"
	"relief/internal/palette"
)

// DefaultRiverColor is used for cells marked in the water overlay.
var DefaultRiverColor = color.RGBA{R: 52, G: 104, B: 196, A: 255}

// MoistureSource supplies a per-cell moisture value in [0, 1].
type MoistureSource interface {
	At(x, y int) float64
}

// Renderer turns a heightfield into shaded colour pixels.
type Renderer struct {
	Picker      palette.Picker
	OceanHeight uint16
	LightLevel  float64

	// Water marks cells (row-major, side*side) drawn in RiverColor. Nil
	// means no water overlay.
	Water      []bool
	RiverColor color.RGBA

	// Moisture feeds the picker; nil yields a neutral 0.5 everywhere.
	Moisture MoistureSource
}

// Render produces one pixel per grid cell; image (x, y) is grid (x, y).
func (r *Renderer) Render(g *core.HeightGrid) *image.RGBA {
	side := g.Side()
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	cells := g.Cells()
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			idx := y*side + x
			if r.Water != nil && idx < len(r.Water) && r.Water[idx] {
				img.SetRGBA(x, y, r.RiverColor)
				continue
			}
			h := cells[idx]
			moisture := 0.5
			if r.Moisture != nil {
				moisture = r.Moisture.At(x, y)
			}
			c := r.Picker.Pick(h, moisture)
			right, below := g.Get(x+1, y), g.Get(x, y+1)
			if right != core.Missing && below != core.Missing {
				delta := int64(right) + int64(below) - 2*int64(h)
				c = Shade(c, delta, h < r.OceanHeight, r.LightLevel)
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Shade applies relief shading for an elevation gradient delta. A
// non-negative delta darkens the colour, a negative one brightens it, by a
// factor of |delta| / (65535 / light), a third of that underwater, capped at 1.
func Shade(c color.RGBA, delta int64, underwater bool, light float64) color.RGBA {
	if light <= 0 {
		return c
	}
	factor := float64(delta) / (core.MaxElevation / light)
	if underwater {
		factor /= 3
	}
	f := mgl64.Clamp(math.Abs(factor), 0, 1)
	apply := func(ch uint8) uint8 {
		v := float64(ch)
		if delta >= 0 {
			v *= 1 - f
		} else {
			v += f * (255 - v)
		}
		return uint8(mgl64.Clamp(v, 0, 255))
	}
	return color.RGBA{R: apply(c.R), G: apply(c.G), B: apply(c.B), A: c.A}
}
