package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"relief/internal/app"
)

func main() {
	opts := app.NewOptions()
	opts.Bind(flag.CommandLine)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: opts.LogLevel()}))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := opts.Resolve(ctx, flag.CommandLine, log); err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	sink := opts.Sink(log)
	if err := sink.Validate(); err != nil {
		log.Error("output", "error", err)
		os.Exit(1)
	}
	if _, err := app.Run(opts.Terrain, sink, log); err != nil {
		log.Error("generate", "error", err)
		os.Exit(1)
	}
}
