package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"relief/internal/app"
	"relief/internal/terrain"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type candidate struct {
	roughness float64
	smooth    float64
}

func (c candidate) String() string {
	return fmt.Sprintf("roughness=%.2f smooth=%.2f", c.roughness, c.smooth)
}

type result struct {
	candidate candidate
	stats     terrain.Stats
	elapsed   time.Duration
	err       error
}

func main() {
	size := flag.Int("size", 256, "requested map size per candidate")
	seed := flag.Int64("seed", 2344541, "seed shared by every candidate")
	roughness := flag.String("roughness", "0.25,0.5,1,2", "comma-separated roughness values")
	smooth := flag.String("smooth", "0.8,0.9,0.95,1", "comma-separated smoothing factors")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	baseCfg := baseConfig(overrides, *size, *seed, app.ExplicitFlags(flag.CommandLine))

	roughOptions, err := parseFloats(*roughness)
	if err != nil {
		fmt.Fprintln(os.Stderr, "roughness:", err)
		os.Exit(2)
	}
	smoothOptions, err := parseFloats(*smooth)
	if err != nil {
		fmt.Fprintln(os.Stderr, "smooth:", err)
		os.Exit(2)
	}

	var sets []candidate
	for _, r := range roughOptions {
		for _, s := range smoothOptions {
			sets = append(sets, candidate{roughness: r, smooth: s})
		}
	}

	fmt.Printf("Sweeping %d candidates (size %d, seed %d)\n", len(sets), baseCfg.Size, baseCfg.Seed)

	collected := make([]result, 0, len(sets))
	for _, c := range sets {
		collected = append(collected, evaluate(baseCfg, c))
	}

	sortResults(collected)

	for _, res := range collected {
		if res.err != nil {
			fmt.Printf("%s: error: %v\n", res.candidate, res.err)
			continue
		}
		s := res.stats
		fmt.Printf("%s -> min %.0f max %.0f mean %.0f stddev %.0f land %.1f%% (%s)\n",
			res.candidate, s.Min, s.Max, s.Mean, s.StdDev, s.Land*100, res.elapsed.Round(time.Millisecond))
	}
}

// baseConfig layers the -set overrides over the -size and -seed defaults.
// Flags passed explicitly on the command line win over -set.
func baseConfig(overrides []string, size int, seed int64, explicit map[string]bool) terrain.Config {
	settings := map[string]string{
		"size": strconv.Itoa(size),
		"seed": strconv.FormatInt(seed, 10),
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		settings[parts[0]] = parts[1]
	}
	if explicit["size"] {
		settings["size"] = strconv.Itoa(size)
	}
	if explicit["seed"] {
		settings["seed"] = strconv.FormatInt(seed, 10)
	}
	return terrain.FromMap(settings)
}

// sortResults orders successful candidates by descending elevation stddev
// and moves failed ones to the end.
func sortResults(results []result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.err == nil) != (b.err == nil) {
			return a.err == nil
		}
		return a.stats.StdDev > b.stats.StdDev
	})
}

func evaluate(base terrain.Config, c candidate) result {
	cfg := base.Clone()
	cfg.Params.Roughness = c.roughness
	cfg.Params.SmoothFactor = c.smooth

	start := time.Now()
	m, err := terrain.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return result{candidate: c, err: err}
	}
	m.Generate()
	return result{candidate: c, stats: m.Stats(), elapsed: time.Since(start)}
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
