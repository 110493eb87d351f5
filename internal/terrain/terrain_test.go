package terrain

import (
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"

	"relief/internal/core"
	"relief/internal/render"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Size = 64
	cfg.Seed = 99
	return cfg
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Params.SmoothFactor = 2
	if _, err := New(cfg, quietLogger()); !errors.Is(err, ErrInvalidParam) {
		t.Fatalf("expected ErrInvalidParam, got %v", err)
	}
	cfg = smallConfig()
	cfg.Size = 0
	if _, err := New(cfg, quietLogger()); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
}

func TestMapResetDeterministic(t *testing.T) {
	m, err := New(smallConfig(), quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Size() != (core.Size{W: 65, H: 65}) {
		t.Fatalf("unexpected size %+v", m.Size())
	}
	if err := m.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	heights := append([]uint16(nil), m.Elevation().Cells()...)
	pixels := append([]byte(nil), m.Image().Pix...)

	// Mutate state to ensure Reset rebuilds from scratch.
	m.Elevation().Cells()[10] = 12345

	if err := m.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !slices.Equal(heights, m.Elevation().Cells()) {
		t.Fatal("Reset with config seed not deterministic for heights")
	}
	if !slices.Equal(pixels, m.Image().Pix) {
		t.Fatal("Reset with config seed not deterministic for render")
	}

	if err := m.Reset(777); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if m.Config().Seed != 777 {
		t.Fatalf("explicit seed not stored, got %d", m.Config().Seed)
	}
	if slices.Equal(heights, m.Elevation().Cells()) {
		t.Fatal("different seeds produced identical heights")
	}
}

func TestMapGenerateKeepsCornersWithoutSmoothing(t *testing.T) {
	cfg := smallConfig()
	cfg.Params.SmoothPasses = 0
	cfg.Corners = [4]uint16{11, 22, 33, 44}
	m, err := New(cfg, quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.Generate()
	g := m.Elevation()
	last := g.Side() - 1
	got := [4]int32{g.Get(0, 0), g.Get(0, last), g.Get(last, 0), g.Get(last, last)}
	if got != [4]int32{11, 22, 33, 44} {
		t.Fatalf("corners not retained: %v", got)
	}
	if m.Image() != nil {
		t.Fatal("Generate should invalidate the previous render")
	}
}

func TestMapRenderRecordsStages(t *testing.T) {
	m, err := New(smallConfig(), quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	var names []string
	for _, st := range m.Stages() {
		names = append(names, st.Name)
	}
	want := []string{"generate", "smooth", "colormap", "render"}
	if !slices.Equal(names, want) {
		t.Fatalf("expected stages %v, got %v", want, names)
	}
	img := m.Image()
	if img.Bounds().Dx() != 65 || img.Bounds().Dy() != 65 {
		t.Fatalf("unexpected image bounds %v", img.Bounds())
	}
}

func TestMapWaterOverlay(t *testing.T) {
	m, err := New(smallConfig(), quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.SetWater(make([]bool, 3)); err == nil {
		t.Fatal("expected error for mismatched water mask")
	}
	mask := make([]bool, len(m.Elevation().Cells()))
	mask[0] = true
	if err := m.SetWater(mask); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if got := m.Image().RGBAAt(0, 0); got != render.DefaultRiverColor {
		t.Fatalf("expected river colour at (0,0), got %+v", got)
	}
}

func TestMapParameterSetters(t *testing.T) {
	m, err := New(smallConfig(), quietLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Reset(0); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if !m.SetFloatParameter("roughness", 1.25) {
		t.Fatal("roughness update rejected")
	}
	if m.Config().Params.Roughness != 1.25 {
		t.Fatalf("roughness not applied: %v", m.Config().Params.Roughness)
	}
	if m.SetFloatParameter("smooth", 3) {
		t.Fatal("out-of-range smooth factor accepted")
	}
	if !m.SetIntParameter("ocean", 20000) {
		t.Fatal("ocean update rejected")
	}
	if m.SeaLevel() != 20000 {
		t.Fatalf("ocean not applied: %d", m.SeaLevel())
	}
	if m.SetIntParameter("ocean", 70000) {
		t.Fatal("out-of-range ocean accepted")
	}
	if m.SetIntParameter("unknown", 1) || m.SetFloatParameter("unknown", 1) {
		t.Fatal("unknown keys should be rejected")
	}

	snap := m.Parameters()
	if p, ok := snap.Lookup("side"); !ok || p.Value != "65" {
		t.Fatalf("expected side 65 in snapshot, got %+v (ok=%v)", p, ok)
	}
	if p, ok := snap.Lookup("ocean"); !ok || p.Value != "20000" {
		t.Fatalf("expected ocean 20000 in snapshot, got %+v (ok=%v)", p, ok)
	}
	if len(m.ParameterControls()) == 0 {
		t.Fatal("expected HUD controls")
	}
}

func TestSummarize(t *testing.T) {
	g, err := core.NewHeightGrid(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	copy(g.Cells(), []uint16{0, 100, 200, 300, 400, 500, 600, 700, 800})

	s := Summarize(g, 450)
	if s.Min != 0 || s.Max != 800 || s.Mean != 400 {
		t.Fatalf("unexpected stats %+v", s)
	}
	if s.StdDev <= 0 {
		t.Fatalf("expected positive stddev, got %v", s.StdDev)
	}
	if want := 4.0 / 9.0; s.Land != want {
		t.Fatalf("expected land share %v, got %v", want, s.Land)
	}
}
