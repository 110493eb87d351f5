//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"relief/internal/core"
	"relief/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type overlayMode int

const (
	overlayNone overlayMode = iota
	overlayElevation
	overlaySea
)

// seaTint is premultiplied, as ebiten expects.
var seaTint = color.RGBA{R: 16, G: 48, B: 112, A: 160}

// Overlay draws the raw elevation or the sea mask on top of the shaded map.
// Key 1 toggles the elevation view and key 2 the sea mask.
type Overlay struct {
	surface core.Surface
	scale   int
	mode    overlayMode

	img *ebiten.Image
	buf []byte

	// Mode and render of the last upload.
	drawnMode  overlayMode
	drawnImage *image.RGBA
}

// NewOverlay constructs an overlay for the surface.
func NewOverlay(surface core.Surface, scale int) *Overlay {
	return &Overlay{surface: surface, scale: max(scale, 1)}
}

// Update switches the overlay mode from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.toggle(overlayElevation)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.toggle(overlaySea)
	}
}

func (o *Overlay) toggle(m overlayMode) {
	if o.mode == m {
		o.mode = overlayNone
		return
	}
	o.mode = m
}

// Draw renders the active overlay onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.mode == overlayNone {
		return
	}
	src, ok := o.surface.(core.ElevationSource)
	if !ok {
		return
	}
	grid := src.Elevation()
	side := grid.Side()
	if o.img == nil || o.img.Bounds().Dx() != side {
		o.img = ebiten.NewImage(side, side)
		o.buf = make([]byte, 4*side*side)
		o.drawnImage = nil
	}

	// The surface swaps its render on every regeneration, so a new image
	// means the heights may have changed as well.
	current := o.surface.Image()
	if o.drawnImage == nil || o.drawnMode != o.mode || o.drawnImage != current {
		switch o.mode {
		case overlayElevation:
			render.FillElevationRGBA(o.buf, grid.Cells(), grid.Max(), 255)
		case overlaySea:
			render.FillSeaMaskRGBA(o.buf, grid.Cells(), src.SeaLevel(), seaTint)
		}
		o.img.WritePixels(o.buf)
		o.drawnMode, o.drawnImage = o.mode, current
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
