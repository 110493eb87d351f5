package terrain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"relief/internal/core"
	"relief/internal/palette"
)

// ErrInvalidParam reports a tunable outside its accepted range.
var ErrInvalidParam = errors.New("invalid terrain parameter")

// Params holds the tunables of the generation and shading stages.
type Params struct {
	Roughness     float64 `json:"roughness"`
	OceanHeight   uint16  `json:"ocean_height"`
	SmoothFactor  float64 `json:"smooth_factor"`
	SmoothPasses  int     `json:"smooth_passes"`
	LightLevel    float64 `json:"light_level"`
	MoistureScale float64 `json:"moisture_scale"`
}

// Config controls one generation run. It is copied into a Map and never
// shared, so a run cannot observe changes made elsewhere.
type Config struct {
	// Size is the requested side length; the allocated side is Size rounded
	// down to a power of two, plus one.
	Size int   `json:"size"`
	Seed int64 `json:"seed"`

	// Corners seeds (0,0), (0,side-1), (side-1,0) and (side-1,side-1) in that order.
	Corners [4]uint16 `json:"corners"`

	Picker string        `json:"picker"`
	Stops  palette.Stops `json:"stops"`

	Params Params `json:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size: 512,
		Seed: 2344541,
		Corners: [4]uint16{
			core.MaxElevation / 2,
			core.MaxElevation / 2,
			core.MaxElevation / 2,
			core.MaxElevation / 10,
		},
		Picker: "topographic",
		Stops:  palette.DefaultStops(),
		Params: Params{
			Roughness:     0.5,
			OceanHeight:   32767,
			SmoothFactor:  0.95,
			SmoothPasses:  2,
			LightLevel:    2,
			MoistureScale: 96,
		},
	}
}

// Validate reports the first configuration error, before any allocation.
func (c Config) Validate() error {
	if _, err := core.SideFor(c.Size); err != nil {
		return err
	}
	p := c.Params
	if math.IsNaN(p.Roughness) || math.IsInf(p.Roughness, 0) || p.Roughness < 0 {
		return fmt.Errorf("%w: roughness %v must be a finite value >= 0", ErrInvalidParam, p.Roughness)
	}
	if math.IsNaN(p.SmoothFactor) || p.SmoothFactor < 0 || p.SmoothFactor > 1 {
		return fmt.Errorf("%w: smooth factor %v must be in [0, 1]", ErrInvalidParam, p.SmoothFactor)
	}
	if p.SmoothPasses < 0 {
		return fmt.Errorf("%w: smooth passes %d must be >= 0", ErrInvalidParam, p.SmoothPasses)
	}
	if math.IsNaN(p.LightLevel) || math.IsInf(p.LightLevel, 0) || p.LightLevel < 0 {
		return fmt.Errorf("%w: light level %v must be a finite value >= 0", ErrInvalidParam, p.LightLevel)
	}
	if math.IsNaN(p.MoistureScale) || p.MoistureScale <= 0 {
		return fmt.Errorf("%w: moisture scale %v must be > 0", ErrInvalidParam, p.MoistureScale)
	}
	if err := c.Stops.Validate(); err != nil {
		return err
	}
	if _, ok := palette.Pickers()[c.Picker]; !ok {
		return fmt.Errorf("%w %q (have %v)", palette.ErrUnknownPicker, c.Picker, palette.Names())
	}
	return nil
}

// Clone returns a copy that shares no slices with c.
func (c Config) Clone() Config {
	c.Stops = c.Stops.Clone()
	return c
}

// ParseCorners parses four comma-separated elevations.
func ParseCorners(v string) ([4]uint16, error) {
	var out [4]uint16
	parts := strings.Split(v, ",")
	if len(parts) != len(out) {
		return out, fmt.Errorf("%w: corners %q need 4 comma-separated values", ErrInvalidParam, v)
	}
	for i, p := range parts {
		parsed, err := strconv.ParseUint(strings.TrimSpace(p), 10, 16)
		if err != nil {
			return out, fmt.Errorf("%w: corner %d: %v", ErrInvalidParam, i, err)
		}
		out[i] = uint16(parsed)
	}
	return out, nil
}

// FormatCorners is the inverse of ParseCorners.
func FormatCorners(c [4]uint16) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.Itoa(int(v))
	}
	return strings.Join(parts, ",")
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable values are ignored and leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["corners"]; ok {
		if parsed, err := ParseCorners(v); err == nil {
			c.Corners = parsed
		}
	}
	if v, ok := cfg["picker"]; ok && v != "" {
		c.Picker = v
	}
	if v, ok := cfg["roughness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Roughness = parsed
		}
	}
	if v, ok := cfg["ocean"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 16); err == nil {
			c.Params.OceanHeight = uint16(parsed)
		}
	}
	if v, ok := cfg["smooth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SmoothFactor = parsed
		}
	}
	if v, ok := cfg["passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.SmoothPasses = parsed
		}
	}
	if v, ok := cfg["light"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.LightLevel = parsed
		}
	}
	if v, ok := cfg["moisture_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.MoistureScale = parsed
		}
	}
	return c
}
