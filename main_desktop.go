//go:build !js

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/flower-explorer/internal/config"
	"github.com/iburimskiy/flower-explorer/internal/game"
)

type options struct {
	width, height int
	step          float64

	headless bool
	frames   int
	out      string
}

func main() {
	var opts options
	flag.IntVar(&opts.width, "width", config.WindowWidth, "Initial viewport width.")
	flag.IntVar(&opts.height, "height", config.WindowHeight, "Initial viewport height.")
	flag.Float64Var(&opts.step, "step", config.TimeStep, "Shader time added per frame.")
	flag.BoolVar(&opts.headless, "headless", false, "Render a PNG snapshot on the CPU instead of opening a window.")
	flag.IntVar(&opts.frames, "frames", config.SnapshotFrames, "Frames to advance before the snapshot in headless mode.")
	flag.StringVar(&opts.out, "out", config.SnapshotFile, "Snapshot file in headless mode.")
	flag.Parse()

	app := newApp(opts.width, opts.height, opts.step)

	if opts.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := snapshot(ctx, app, opts.frames, opts.out); err != nil {
			slog.Error("snapshot failed", "err", err)
			os.Exit(1)
		}
		slog.Info("snapshot written", "file", opts.out, "frames", opts.frames)
		return
	}

	if err := game.Run(app, title); err != nil {
		slog.Error("flower explorer stopped", "err", err)
		// The shader diagnostic is only readable in a terminal; show it too.
		if dErr := zenity.Error(err.Error(), zenity.Title(title), zenity.ErrorIcon); dErr != nil {
			slog.Debug("error dialog unavailable", "err", dErr)
		}
		os.Exit(1)
	}
}
