//go:build !js

package main

import (
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/iburimskiy/flower-explorer/internal/explorer"
	"github.com/iburimskiy/flower-explorer/internal/flower"
)

// snapshot advances app by frames ticks on the software canvas and writes the
// last frame to path as PNG.
func snapshot(ctx context.Context, app *explorer.App, frames int, path string) error {
	var c flower.Canvas
	for i := 0; i < max(frames, 1); i++ {
		app.Tick(&c)
	}
	img, err := c.Image(ctx)
	if err != nil {
		return fmt.Errorf("rendering snapshot: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return f.Close()
}
