package terrain

import (
	"fmt"
	"image"
	"log/slog"

	"relief/internal/core"
	"relief/internal/palette"
	"relief/internal/render"
)

// Map owns one heightfield and the derived colour render. The pipeline is
// generate -> smooth -> build colour map -> render, all on the calling
// goroutine.
type Map struct {
	cfg Config
	log *slog.Logger

	grid   *core.HeightGrid
	colors *palette.ColorMap
	water  []bool
	img    *image.RGBA

	timer *core.Stopwatch
}

// New validates cfg and allocates the grid. Configuration errors are returned
// before any generation work happens.
func New(cfg Config, log *slog.Logger) (*Map, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("terrain config: %w", err)
	}
	grid, err := core.NewHeightGrid(cfg.Size)
	if err != nil {
		return nil, err
	}
	return &Map{
		cfg:   cfg.Clone(),
		log:   log,
		grid:  grid,
		timer: core.NewStopwatch(),
	}, nil
}

// Name returns the surface identifier.
func (m *Map) Name() string { return "relief" }

// Size reports the allocated grid dimensions.
func (m *Map) Size() core.Size { return m.grid.Size() }

// Config returns a copy of the active configuration.
func (m *Map) Config() Config { return m.cfg.Clone() }

// Elevation exposes the heightfield.
func (m *Map) Elevation() *core.HeightGrid { return m.grid }

// SeaLevel returns the configured ocean height.
func (m *Map) SeaLevel() uint16 { return m.cfg.Params.OceanHeight }

// Image returns the last render, or nil before Render has run.
func (m *Map) Image() *image.RGBA { return m.img }

// Stages returns the timings of the last Generate and Render calls.
func (m *Map) Stages() []core.Stage { return m.timer.Stages() }

// SetWater installs a row-major water overlay; nil clears it.
func (m *Map) SetWater(mask []bool) error {
	if mask != nil && len(mask) != len(m.grid.Cells()) {
		return fmt.Errorf("water mask has %d cells, grid has %d", len(mask), len(m.grid.Cells()))
	}
	m.water = mask
	return nil
}

// Generate fills the grid from the configured seed and smooths it.
func (m *Map) Generate() {
	m.timer.Reset()
	m.grid.Clear()

	rng := core.NewRNG(m.cfg.Seed)
	gen := &Generator{
		Roughness: m.cfg.Params.Roughness,
		Source:    rng,
		Log:       m.log,
	}
	stop := m.timer.Track("generate")
	gen.Run(m.grid, m.cfg.Corners)
	stop()

	stop = m.timer.Track("smooth")
	Smooth(m.grid, m.cfg.Params.SmoothFactor, m.cfg.Params.SmoothPasses)
	stop()

	m.img = nil
}

// Render builds the colour map once and shades every cell.
func (m *Map) Render() (*image.RGBA, error) {
	p := m.cfg.Params
	if m.colors == nil {
		stop := m.timer.Track("colormap")
		colors, err := palette.NewColorMap(m.cfg.Stops, p.OceanHeight, 0, palette.LUTSize)
		stop()
		if err != nil {
			return nil, fmt.Errorf("build colour map: %w", err)
		}
		m.colors = colors
	}
	picker, err := palette.NewPicker(m.cfg.Picker, palette.PickerConfig{Colors: m.colors, Ocean: p.OceanHeight})
	if err != nil {
		return nil, err
	}
	r := &render.Renderer{
		Picker:      picker,
		OceanHeight: p.OceanHeight,
		LightLevel:  p.LightLevel,
		Water:       m.water,
		RiverColor:  render.DefaultRiverColor,
		Moisture:    palette.NewMoistureField(m.cfg.Seed, p.MoistureScale),
	}
	stop := m.timer.Track("render")
	m.img = r.Render(m.grid)
	stop()
	return m.img, nil
}

// Reset regenerates and re-renders from seed. A zero seed keeps the
// configured one.
func (m *Map) Reset(seed int64) error {
	if seed != 0 {
		m.cfg.Seed = seed
	}
	m.Generate()
	if _, err := m.Render(); err != nil {
		return err
	}
	m.log.Info("terrain regenerated", "seed", m.cfg.Seed, "side", m.grid.Side())
	return nil
}
