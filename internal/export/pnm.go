package export

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"relief/internal/core"
)

// WritePGM writes g as a plain-text P2 image, one grid row per line. The
// max-value field is the highest stored elevation, at least 1.
func WritePGM(w io.Writer, g *core.HeightGrid) error {
	bw := bufio.NewWriter(w)
	side := g.Side()
	peak := g.Max()
	if peak == 0 {
		peak = 1
	}
	if _, err := fmt.Fprintf(bw, "P2\n%d %d\n%d\n", side, side, peak); err != nil {
		return err
	}
	cells := g.Cells()
	var line []byte
	for y := 0; y < side; y++ {
		line = line[:0]
		for x, v := range cells[y*side : (y+1)*side] {
			if x > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(v), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WritePPM writes img as a plain-text P3 image with a max-value of 255.
func WritePPM(w io.Writer, img image.Image) error {
	bw := bufio.NewWriter(w)
	b := img.Bounds()
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	var line []byte
	for y := b.Min.Y; y < b.Max.Y; y++ {
		line = line[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if x > b.Min.X {
				line = append(line, ' ')
			}
			line = strconv.AppendUint(line, uint64(c.R), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.G), 10)
			line = append(line, ' ')
			line = strconv.AppendUint(line, uint64(c.B), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// HeightImage copies g into a 16-bit grayscale image.
func HeightImage(g *core.HeightGrid) *image.Gray16 {
	side := g.Side()
	img := image.NewGray16(image.Rect(0, 0, side, side))
	for i, v := range g.Cells() {
		img.Pix[2*i] = uint8(v >> 8)
		img.Pix[2*i+1] = uint8(v)
	}
	return img
}
