package palette

import (
	"errors"
	"fmt"
	"image/color"
)

// LUTSize is the number of entries in a ColorMap: one per 16-bit elevation.
const LUTSize = 1 << 16

// ErrInvalidRange reports an elevation range or ocean height the colour map
// cannot be built from.
var ErrInvalidRange = errors.New("invalid colour map range")

// Band is one interpolation segment of a ColorMap. Elevations in [Start, End)
// blend from Lower to Upper.
type Band struct {
	Start int
	End   int
	Lower color.RGBA
	Upper color.RGBA
}

// ColorMap is a dense elevation to colour lookup table. Entries outside the
// range it was built for are left black.
type ColorMap struct {
	lut   []color.RGBA
	bands []Band
}

// NewColorMap builds the lookup table for elevations in [min, max). The part
// below ocean is split into len(stops.Below) equal bands, the part from ocean
// upward into len(stops.Above) bands. The last band of each side absorbs the
// remainder of the integer division and holds its stop colour flat.
func NewColorMap(stops Stops, ocean uint16, min, max int) (*ColorMap, error) {
	if err := stops.Validate(); err != nil {
		return nil, err
	}
	if min < 0 || max > LUTSize || min >= max {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrInvalidRange, min, max)
	}
	if int(ocean) < min || int(ocean) > max {
		return nil, fmt.Errorf("%w: ocean height %d outside [%d, %d]", ErrInvalidRange, ocean, min, max)
	}
	m := &ColorMap{lut: make([]color.RGBA, LUTSize)}
	m.fill(stops.Below, min, int(ocean))
	m.fill(stops.Above, int(ocean), max)
	return m, nil
}

func (m *ColorMap) fill(stops []color.RGBA, start, end int) {
	n := len(stops)
	step := (end - start) / n
	for i := 0; i < n; i++ {
		lower := stops[i]
		upper := lower
		if i+1 < n {
			upper = stops[i+1]
		}
		bandStart := start + i*step
		bandEnd := bandStart + step
		if i == n-1 {
			bandEnd = end
		}
		m.bands = append(m.bands, Band{Start: bandStart, End: bandEnd, Lower: lower, Upper: upper})
		for h := bandStart; h < bandEnd; h++ {
			offset := h - bandStart
			m.lut[h] = color.RGBA{
				R: interpolate(lower.R, upper.R, step, offset),
				G: interpolate(lower.G, upper.G, step, offset),
				B: interpolate(lower.B, upper.B, step, offset),
				A: 255,
			}
		}
	}
}

func interpolate(lower, upper uint8, step, offset int) uint8 {
	if step <= 0 {
		return lower
	}
	v := float64(lower) + (float64(upper)-float64(lower))/float64(step)*float64(offset)
	return clampChannel(v)
}

// At returns the colour for elevation h.
func (m *ColorMap) At(h uint16) color.RGBA { return m.lut[h] }

// Pick implements Picker by ignoring moisture.
func (m *ColorMap) Pick(h uint16, _ float64) color.RGBA { return m.lut[h] }

// Bands returns the interpolation segments, sub-ocean bands first.
func (m *ColorMap) Bands() []Band { return m.bands }

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
