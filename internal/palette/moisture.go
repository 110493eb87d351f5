package palette

import (
	"image/color"

	"github.com/aquilax/go-perlin"
)

// MoistureTint tints the topographic colour of land cells toward a dry or a
// wet colour. Cells below the ocean height keep their base colour.
type MoistureTint struct {
	Colors   *ColorMap
	Ocean    uint16
	Dry      color.RGBA
	Wet      color.RGBA
	Strength float64
}

// Pick blends the base colour toward Dry for moisture below 0.5 and toward Wet
// above it, proportionally to the distance from 0.5.
func (t *MoistureTint) Pick(h uint16, moisture float64) color.RGBA {
	base := t.Colors.At(h)
	if h < t.Ocean {
		return base
	}
	moisture = clamp01(moisture)
	if moisture < 0.5 {
		return blendColors(base, t.Dry, (0.5-moisture)*2*t.Strength)
	}
	return blendColors(base, t.Wet, (moisture-0.5)*2*t.Strength)
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	inv := 1 - overlayWeight
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*overlayWeight + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*overlayWeight + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*overlayWeight + 0.5),
		A: 255,
	}
}

// MoistureField samples seeded Perlin noise as a moisture value per cell.
type MoistureField struct {
	noise *perlin.Perlin
	scale float64
}

// NewMoistureField creates a field whose features are roughly scale cells wide.
func NewMoistureField(seed int64, scale float64) *MoistureField {
	if scale <= 0 {
		scale = 1
	}
	// alpha=2, beta=2, n=3 gives smooth, terrain-like variation.
	return &MoistureField{noise: perlin.NewPerlin(2, 2, 3, seed), scale: scale}
}

// At returns the moisture at cell (x, y) in [0, 1].
func (f *MoistureField) At(x, y int) float64 {
	v := f.noise.Noise2D(float64(x)/f.scale, float64(y)/f.scale)
	return clamp01(0.5 + v)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func init() {
	Register("moisture", func(cfg PickerConfig) Picker {
		return &MoistureTint{
			Colors:   cfg.Colors,
			Ocean:    cfg.Ocean,
			Dry:      color.RGBA{R: 196, G: 170, B: 112, A: 255},
			Wet:      color.RGBA{R: 36, G: 104, B: 60, A: 255},
			Strength: 0.6,
		}
	})
}
