package core

import "image"

// Size describes the dimensions of a raster.
type Size struct {
	W int
	H int
}

// Surface is the contract the viewer needs from a generated terrain.
type Surface interface {
	Name() string
	Size() Size
	// Reset regenerates the surface from the given seed.
	Reset(seed int64) error
	// Image returns the most recent shaded render.
	Image() *image.RGBA
}

// ElevationSource exposes the raw heightfield behind a Surface.
type ElevationSource interface {
	Elevation() *HeightGrid
	SeaLevel() uint16
}
