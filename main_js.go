//go:build js

package main

import (
	"log/slog"
	"os"

	"github.com/iburimskiy/flower-explorer/internal/config"
	"github.com/iburimskiy/flower-explorer/internal/game"
)

// In the browser the canvas size comes from the page; Layout picks it up on
// the first frame.
func main() {
	app := newApp(config.WindowWidth, config.WindowHeight, config.TimeStep)
	if err := game.Run(app, title); err != nil {
		slog.Error("flower explorer stopped", "err", err)
		os.Exit(1)
	}
}
