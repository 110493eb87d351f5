//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"relief/internal/app"
	"relief/internal/terrain"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: opts.LogLevel()}))

	if err := opts.Resolve(context.Background(), flag.CommandLine, log); err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	m, err := terrain.New(opts.Terrain, log)
	if err != nil {
		log.Error("configure", "error", err)
		os.Exit(1)
	}
	if err := m.Reset(0); err != nil {
		log.Error("generate", "error", err)
		os.Exit(1)
	}

	game := app.New(m, opts.Scale, opts.Terrain.Seed, log)
	size := m.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("relief: %d x %d", size.W, size.H))
	ebiten.SetWindowSize(size.W*opts.Scale+app.HUDWidth, size.H*opts.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer", "error", err)
		os.Exit(1)
	}
}
