package export

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Preview scales src so its longest side is at most longest pixels, keeping
// the aspect ratio. A non-positive longest returns a same-size copy.
func Preview(src image.Image, longest int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if longest > 0 && (w > longest || h > longest) {
		scale := float64(longest) / float64(max(w, h))
		w = max(1, int(math.Round(float64(w)*scale)))
		h = max(1, int(math.Round(float64(h)*scale)))
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
