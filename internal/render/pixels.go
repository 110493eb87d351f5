package render

import "image/color"

// FillElevationRGBA writes a grayscale ramp of the elevations into buf, scaled
// so peak maps to white. buf holds 4 bytes per cell.
func FillElevationRGBA(buf []byte, cells []uint16, peak uint16, alpha uint8) {
	scale := 0.0
	if peak > 0 {
		scale = 255 / float64(peak)
	}
	for i, h := range cells {
		base := i * 4
		v := uint8(float64(h) * scale)
		buf[base+0] = v
		buf[base+1] = v
		buf[base+2] = v
		buf[base+3] = alpha
	}
}

// FillSeaMaskRGBA paints cells below ocean with tint and clears the rest to
// transparent black.
func FillSeaMaskRGBA(buf []byte, cells []uint16, ocean uint16, tint color.RGBA) {
	for i, h := range cells {
		base := i * 4
		if h < ocean {
			buf[base+0] = tint.R
			buf[base+1] = tint.G
			buf[base+2] = tint.B
			buf[base+3] = tint.A
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
}
