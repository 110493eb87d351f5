package terrain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"relief/internal/core"
)

// Stats summarises a heightfield.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	// Land is the share of cells at or above the ocean height.
	Land float64
}

// Summarize computes Stats for g against the given ocean height.
func Summarize(g *core.HeightGrid, ocean uint16) Stats {
	cells := g.Cells()
	if len(cells) == 0 {
		return Stats{}
	}
	xs := make([]float64, len(cells))
	land := 0
	for i, v := range cells {
		xs[i] = float64(v)
		if v >= ocean {
			land++
		}
	}
	mean, std := stat.MeanStdDev(xs, nil)
	return Stats{
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		Mean:   mean,
		StdDev: std,
		Land:   float64(land) / float64(len(cells)),
	}
}

// LogAttrs returns the stats as slog key/value pairs.
func (s Stats) LogAttrs() []any {
	return []any{"min", s.Min, "max", s.Max, "mean", s.Mean, "stddev", s.StdDev, "land", s.Land}
}

// Stats summarises the current heightfield.
func (m *Map) Stats() Stats {
	return Summarize(m.grid, m.cfg.Params.OceanHeight)
}
