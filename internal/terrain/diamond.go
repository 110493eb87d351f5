package terrain

import (
	"log/slog"

	"relief/internal/core"
)

// OffsetSource produces the random perturbation added to every new sample.
type OffsetSource interface {
	Offset(magnitude float64) int64
}

// Generator fills a HeightGrid with diamond-square subdivision.
type Generator struct {
	Roughness float64
	Source    OffsetSource
	Log       *slog.Logger

	// OnVisit, when set, is called for every cell the generator writes.
	OnVisit func(x, y int)
}

// Run seeds the four corners and subdivides until every cell is filled.
// Draws are consumed square centres first, then diamond centres, x outer and
// y inner within each; changing that order changes the output for a seed.
func (gen *Generator) Run(g *core.HeightGrid, corners [4]uint16) {
	side := g.Side()
	last := side - 1
	gen.set(g, 0, 0, int64(corners[0]))
	gen.set(g, 0, last, int64(corners[1]))
	gen.set(g, last, 0, int64(corners[2]))
	gen.set(g, last, last, int64(corners[3]))

	// The side shrinks as side/2+1, which for a 2^k+1 grid walks 2^(k-1)+1,
	// 2^(k-2)+1, ... 3 and visits every lattice point.
	for square := side; square > 2; square = square/2 + 1 {
		if gen.Log != nil {
			gen.Log.Debug("subdivide", "square_size", square)
		}
		half := square / 2
		stride := square - 1
		magnitude := gen.Roughness * float64(square)

		for x := half; x < side; x += stride {
			for y := half; y < side; y += stride {
				offset := gen.Source.Offset(magnitude)
				avg, ok := average(
					g.Get(x-half, y-half),
					g.Get(x+half, y-half),
					g.Get(x-half, y+half),
					g.Get(x+half, y+half),
				)
				if !ok {
					avg = int64(g.Get(x, y))
				}
				gen.set(g, x, y, avg+offset)
			}
		}

		for x := 0; x < side; x += half {
			for y := half - x%stride; y < side; y += stride {
				offset := gen.Source.Offset(magnitude)
				avg, ok := average(
					g.Get(x, y-half),
					g.Get(x+half, y),
					g.Get(x, y+half),
					g.Get(x-half, y),
				)
				if !ok {
					avg = int64(g.Get(x, y))
				}
				gen.set(g, x, y, avg+offset)
			}
		}
	}
}

func (gen *Generator) set(g *core.HeightGrid, x, y int, v int64) {
	g.SetClamped(x, y, v)
	if gen.OnVisit != nil {
		gen.OnVisit(x, y)
	}
}

// average returns the truncated mean of the values that are not core.Missing.
// ok is false when all four are missing.
func average(v1, v2, v3, v4 int32) (int64, bool) {
	var sum, n int64
	for _, v := range [4]int32{v1, v2, v3, v4} {
		if v < 0 {
			continue
		}
		sum += int64(v)
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / n, true
}
