package core

import (
	"errors"
	"fmt"
	"math/bits"
)

// Missing is returned by HeightGrid.Get for coordinates outside the grid. It is
// negative so it can never collide with a stored elevation.
const Missing int32 = -1

// MaxElevation is the highest value a HeightGrid sample can hold.
const MaxElevation = 65535

// MaxRequestedSize bounds the requested side length so a grid stays addressable.
const MaxRequestedSize = 1 << 15

// ErrInvalidSize reports a requested side length that cannot produce a grid.
var ErrInvalidSize = errors.New("invalid grid size")

// SideFor returns the side length of the grid allocated for a requested size:
// the requested value rounded down to a power of two, plus one.
func SideFor(requested int) (int, error) {
	if requested < 2 || requested > MaxRequestedSize {
		return 0, fmt.Errorf("%w: %d (want 2..%d)", ErrInvalidSize, requested, MaxRequestedSize)
	}
	pow := 1 << (bits.Len(uint(requested)) - 1)
	return pow + 1, nil
}

// HeightGrid stores a square heightfield of 16-bit elevations in row-major order.
// Its side is always a power of two plus one.
type HeightGrid struct {
	side int
	data []uint16
}

// NewHeightGrid allocates a zeroed grid for the requested size.
func NewHeightGrid(requested int) (*HeightGrid, error) {
	side, err := SideFor(requested)
	if err != nil {
		return nil, err
	}
	return &HeightGrid{side: side, data: make([]uint16, side*side)}, nil
}

// Side returns the number of samples along each edge.
func (g *HeightGrid) Side() int { return g.side }

// Size reports the grid dimensions.
func (g *HeightGrid) Size() Size { return Size{W: g.side, H: g.side} }

// Cells exposes the backing slice so callers can read values directly.
func (g *HeightGrid) Cells() []uint16 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *HeightGrid) Index(x, y int) int { return y*g.side + x }

// In reports whether (x, y) lies inside the grid.
func (g *HeightGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.side && y < g.side
}

// Get returns the elevation at (x, y), or Missing when out of bounds.
func (g *HeightGrid) Get(x, y int) int32 {
	if !g.In(x, y) {
		return Missing
	}
	return int32(g.data[y*g.side+x])
}

// Set stores v at (x, y). Out-of-bounds writes are ignored.
func (g *HeightGrid) Set(x, y int, v uint16) {
	if !g.In(x, y) {
		return
	}
	g.data[y*g.side+x] = v
}

// SetClamped stores v clamped to [0, MaxElevation].
func (g *HeightGrid) SetClamped(x, y int, v int64) {
	g.Set(x, y, ClampElevation(v))
}

// Max returns the highest stored elevation.
func (g *HeightGrid) Max() uint16 {
	var m uint16
	for _, v := range g.data {
		if v > m {
			m = v
		}
	}
	return m
}

// Clone returns a deep copy of the grid.
func (g *HeightGrid) Clone() *HeightGrid {
	return &HeightGrid{side: g.side, data: append([]uint16(nil), g.data...)}
}

// Clear fills the grid with zeros.
func (g *HeightGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// ClampElevation narrows a widened elevation back into the storable range.
func ClampElevation(v int64) uint16 {
	if v < 0 {
		return 0
	}
	if v > MaxElevation {
		return MaxElevation
	}
	return uint16(v)
}
