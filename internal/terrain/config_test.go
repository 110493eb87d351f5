package terrain

import (
	"errors"
	"math"
	"testing"

	"relief/internal/core"
	"relief/internal/palette"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestConfigValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"size too small", func(c *Config) { c.Size = 1 }, core.ErrInvalidSize},
		{"size too large", func(c *Config) { c.Size = core.MaxRequestedSize + 1 }, core.ErrInvalidSize},
		{"negative roughness", func(c *Config) { c.Params.Roughness = -0.1 }, ErrInvalidParam},
		{"nan roughness", func(c *Config) { c.Params.Roughness = math.NaN() }, ErrInvalidParam},
		{"smooth above one", func(c *Config) { c.Params.SmoothFactor = 1.5 }, ErrInvalidParam},
		{"negative passes", func(c *Config) { c.Params.SmoothPasses = -1 }, ErrInvalidParam},
		{"negative light", func(c *Config) { c.Params.LightLevel = -2 }, ErrInvalidParam},
		{"zero moisture scale", func(c *Config) { c.Params.MoistureScale = 0 }, ErrInvalidParam},
		{"no ocean stops", func(c *Config) { c.Stops.Below = nil }, palette.ErrNoStops},
		{"unknown picker", func(c *Config) { c.Picker = "sepia" }, palette.ErrUnknownPicker},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigCloneDoesNotShareStops(t *testing.T) {
	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.Stops.Above[0].R++
	if cfg.Stops.Above[0] == clone.Stops.Above[0] {
		t.Fatal("clone shares stop slices with the original")
	}
}

func TestFromMapParsesValues(t *testing.T) {
	cfg := FromMap(map[string]string{
		"size":           "256",
		"seed":           "42",
		"corners":        "1, 2,3,4",
		"picker":         "moisture",
		"roughness":      "0.25",
		"ocean":          "30000",
		"smooth":         "0.5",
		"passes":         "3",
		"light":          "1.5",
		"moisture_scale": "40",
	})

	if cfg.Size != 256 || cfg.Seed != 42 {
		t.Fatalf("unexpected size/seed: %d/%d", cfg.Size, cfg.Seed)
	}
	if cfg.Corners != [4]uint16{1, 2, 3, 4} {
		t.Fatalf("unexpected corners: %v", cfg.Corners)
	}
	if cfg.Picker != "moisture" {
		t.Fatalf("unexpected picker: %q", cfg.Picker)
	}
	want := Params{Roughness: 0.25, OceanHeight: 30000, SmoothFactor: 0.5, SmoothPasses: 3, LightLevel: 1.5, MoistureScale: 40}
	if cfg.Params != want {
		t.Fatalf("unexpected params: %+v", cfg.Params)
	}
}

func TestFromMapIgnoresInvalidValues(t *testing.T) {
	def := DefaultConfig()
	cfg := FromMap(map[string]string{
		"size":      "-4",
		"corners":   "1,2,3",
		"roughness": "rough",
		"ocean":     "70000",
		"smooth":    "2",
	})
	if cfg.Size != def.Size || cfg.Corners != def.Corners || cfg.Params != def.Params {
		t.Fatalf("invalid values should keep defaults, got %+v", cfg)
	}
}

func TestParseCorners(t *testing.T) {
	got, err := ParseCorners("0,65535, 100 ,7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != [4]uint16{0, 65535, 100, 7} {
		t.Fatalf("unexpected corners %v", got)
	}
	if FormatCorners(got) != "0,65535,100,7" {
		t.Fatalf("unexpected formatting %q", FormatCorners(got))
	}
	for _, bad := range []string{"", "1,2,3", "1,2,3,65536", "a,b,c,d"} {
		if _, err := ParseCorners(bad); !errors.Is(err, ErrInvalidParam) {
			t.Fatalf("%q: expected ErrInvalidParam, got %v", bad, err)
		}
	}
}
