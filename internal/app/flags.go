package app

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"relief/internal/export"
	"relief/internal/palette"
	"relief/internal/terrain"
)

// Options represents the command-line parameters shared by the relief tools.
type Options struct {
	Terrain terrain.Config

	ConfigSrc   string
	Output      string
	Heightmap   string
	Preview     string
	PreviewSize int
	Verbose     bool
	Scale       int
}

// NewOptions returns Options populated with the default terrain configuration.
func NewOptions() *Options {
	return &Options{
		Terrain:     terrain.DefaultConfig(),
		Output:      "map.ppm",
		PreviewSize: 512,
		Scale:       1,
	}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	c := &o.Terrain
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random offset source")
	fs.IntVar(&c.Size, "size", c.Size, "requested map size, rounded down to a power of two plus one")
	fs.Var((*cornersValue)(&c.Corners), "corners", "four comma-separated corner elevations")
	fs.StringVar(&c.Picker, "picker", c.Picker, fmt.Sprintf("colour picker %v", palette.Names()))
	fs.Float64Var(&c.Params.Roughness, "roughness", c.Params.Roughness, "random offset scale per square size")
	fs.Var((*uint16Value)(&c.Params.OceanHeight), "ocean", "ocean height (0-65535)")
	fs.Float64Var(&c.Params.SmoothFactor, "smooth", c.Params.SmoothFactor, "smoothing factor in [0, 1]; 1 disables smoothing")
	fs.IntVar(&c.Params.SmoothPasses, "passes", c.Params.SmoothPasses, "smoothing passes")
	fs.Float64Var(&c.Params.LightLevel, "light", c.Params.LightLevel, "relief shading strength; 0 disables shading")
	fs.Float64Var(&c.Params.MoistureScale, "moisture-scale", c.Params.MoistureScale, "cells per moisture noise period")

	fs.StringVar(&o.ConfigSrc, "config", o.ConfigSrc, "JSON config file or go-getter source; explicit flags win")
	fs.StringVar(&o.Output, "o", o.Output, "colour image path (.ppm, .png, .bmp, .tiff)")
	fs.StringVar(&o.Heightmap, "heightmap", o.Heightmap, "heightmap path (.pgm, .png)")
	fs.StringVar(&o.Preview, "preview", o.Preview, "down-scaled preview path")
	fs.IntVar(&o.PreviewSize, "preview-size", o.PreviewSize, "longest side of the preview in pixels")
	fs.BoolVar(&o.Verbose, "v", o.Verbose, "debug logging")
	fs.IntVar(&o.Scale, "scale", o.Scale, "viewer pixel scale multiplier")
}

// Sink builds the file sink described by the output flags.
func (o *Options) Sink(log *slog.Logger) *export.FileSink {
	return &export.FileSink{
		HeightPath:  o.Heightmap,
		ColorPath:   o.Output,
		PreviewPath: o.Preview,
		PreviewSize: o.PreviewSize,
		Log:         log,
	}
}

// LogLevel maps the verbose flag to a slog level.
func (o *Options) LogLevel() slog.Level {
	if o.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// ExplicitFlags returns the names of the flags set on the command line.
func ExplicitFlags(fs *flag.FlagSet) map[string]bool {
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	return explicit
}

type uint16Value uint16

func (v *uint16Value) String() string { return strconv.FormatUint(uint64(*v), 10) }

func (v *uint16Value) Set(s string) error {
	parsed, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return err
	}
	*v = uint16Value(parsed)
	return nil
}

type cornersValue [4]uint16

func (v *cornersValue) String() string { return terrain.FormatCorners(*v) }

func (v *cornersValue) Set(s string) error {
	parsed, err := terrain.ParseCorners(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
