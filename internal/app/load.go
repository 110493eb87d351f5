package app

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	getter "github.com/hashicorp/go-getter"

	"relief/internal/terrain"
)

// LoadConfig fetches a JSON terrain config from src, which may be a local path
// or any go-getter source (http, s3::, git::, ...). Fields missing from the
// file keep their DefaultConfig values.
func LoadConfig(ctx context.Context, src string, log *slog.Logger) (terrain.Config, error) {
	cfg := terrain.DefaultConfig()
	dir, err := os.MkdirTemp("", "relief-config-*")
	if err != nil {
		return cfg, err
	}
	defer os.RemoveAll(dir)

	pwd, err := os.Getwd()
	if err != nil {
		return cfg, err
	}
	dst := filepath.Join(dir, "config.json")
	client := &getter.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeFile,
	}
	log.Debug("fetching config", "src", src)
	if err := client.Get(); err != nil {
		return cfg, fmt.Errorf("fetch config %q: %w", src, err)
	}

	data, err := os.ReadFile(dst)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", src, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("decode config %q: %w", src, err)
	}
	log.Info("loaded config", "src", src)
	return cfg, nil
}

// Merge applies file-loaded values into cfg, but only for fields that were
// NOT explicitly set via CLI flags. explicitFlags holds the flag names that
// were provided on the command line.
func Merge(cfg *terrain.Config, fromFile *terrain.Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["size"] {
		cfg.Size = fromFile.Size
	}
	if !explicitFlags["corners"] {
		cfg.Corners = fromFile.Corners
	}
	if !explicitFlags["picker"] {
		cfg.Picker = fromFile.Picker
	}
	if !explicitFlags["roughness"] {
		cfg.Params.Roughness = fromFile.Params.Roughness
	}
	if !explicitFlags["ocean"] {
		cfg.Params.OceanHeight = fromFile.Params.OceanHeight
	}
	if !explicitFlags["smooth"] {
		cfg.Params.SmoothFactor = fromFile.Params.SmoothFactor
	}
	if !explicitFlags["passes"] {
		cfg.Params.SmoothPasses = fromFile.Params.SmoothPasses
	}
	if !explicitFlags["light"] {
		cfg.Params.LightLevel = fromFile.Params.LightLevel
	}
	if !explicitFlags["moisture-scale"] {
		cfg.Params.MoistureScale = fromFile.Params.MoistureScale
	}
	// Stops have no flag.
	cfg.Stops = fromFile.Stops.Clone()
}

// Resolve applies the -config source, if any, beneath the explicit flags of fs.
func (o *Options) Resolve(ctx context.Context, fs *flag.FlagSet, log *slog.Logger) error {
	if o.ConfigSrc == "" {
		return nil
	}
	fromFile, err := LoadConfig(ctx, o.ConfigSrc, log)
	if err != nil {
		return err
	}
	Merge(&o.Terrain, &fromFile, ExplicitFlags(fs))
	return nil
}
