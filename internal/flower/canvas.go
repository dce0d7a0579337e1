package flower

import (
	"context"
	"errors"
	"image"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/iburimskiy/flower-explorer/internal/explorer"
)

// ErrNoFrame is returned by Canvas.Image before anything was rendered.
var ErrNoFrame = errors.New("flower: no frame rendered")

// Canvas is a software Surface. Render only records the uniform table; the
// pixels are computed on demand by Image, sized to the resolution uniform.
type Canvas struct {
	uniforms explorer.Uniforms
	frames   int
}

// Render implements explorer.Surface.
func (c *Canvas) Render(u *explorer.Uniforms) {
	c.uniforms = *u
	c.frames++
}

// Frames returns how many times Render was called.
func (c *Canvas) Frames() int { return c.frames }

// Image rasterizes the last rendered frame. Rows are shaded concurrently.
func (c *Canvas) Image(ctx context.Context) (*image.RGBA, error) {
	if c.frames == 0 {
		return nil, ErrNoFrame
	}
	u := c.uniforms
	w, h := int(u.Resolution[0]), int(u.Resolution[1])
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for row := 0; row < h; row++ {
		row := row
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Image rows run top-down, fragment coordinates bottom-up.
			y := float32(h-row) - .5
			for col := 0; col < w; col++ {
				img.SetRGBA(col, row, toRGBA(Shade(&u, float32(col)+.5, y)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

func toRGBA(v [3]float32) color.RGBA {
	return color.RGBA{R: channel(v[0]), G: channel(v[1]), B: channel(v[2]), A: 0xff}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*0xff + .5)
}
