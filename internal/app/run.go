package app

import (
	"fmt"
	"log/slog"

	"relief/internal/export"
	"relief/internal/terrain"
)

// Run executes one headless generation and hands the heightfield and the
// shaded render to sink.
func Run(cfg terrain.Config, sink export.Sink, log *slog.Logger) (*terrain.Map, error) {
	m, err := terrain.New(cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info("generating terrain", m.Parameters().LogAttrs()...)

	m.Generate()
	img, err := m.Render()
	if err != nil {
		return nil, err
	}
	log.Info("terrain statistics", m.Stats().LogAttrs()...)

	if err := sink.WriteHeight(m.Elevation()); err != nil {
		return nil, fmt.Errorf("export heightmap: %w", err)
	}
	if err := sink.WriteColor(img); err != nil {
		return nil, fmt.Errorf("export image: %w", err)
	}
	for _, st := range m.Stages() {
		log.Info("stage", "name", st.Name, "duration", st.Duration)
	}
	return m, nil
}
