// Package explorer ties the parameter store to the shader uniforms. An App is
// the whole mutable state of a session; the host loop calls Tick once per
// display refresh and Resize whenever the viewport changes.
package explorer

import (
	"log/slog"

	"github.com/iburimskiy/flower-explorer/internal/config"
	"github.com/iburimskiy/flower-explorer/internal/params"
)

// Surface is the rendering backend: a full-screen quad whose shader reads the
// uniform table.
type Surface interface {
	Render(u *Uniforms)
}

// App owns the parameter store, the uniform table and the viewport.
type App struct {
	Params *params.Store

	uniforms Uniforms
	step     float64
	time     float64
	width    int
	height   int
}

// Option configures an App.
type Option func(*App)

// WithTimeStep overrides the per-tick time increment.
func WithTimeStep(step float64) Option {
	return func(a *App) { a.step = step }
}

// WithParams uses store instead of the defaults. A nil store keeps the
// defaults.
func WithParams(store *params.Store) Option {
	return func(a *App) {
		if store != nil {
			a.Params = store
		}
	}
}

// New creates an App for a viewport of width×height pixels.
func New(width, height int, opts ...Option) *App {
	a := &App{
		Params: params.Defaults(),
		step:   config.TimeStep,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.width, a.height = clampSize(width, height)
	a.uniforms = initialUniforms(a.width, a.height)
	return a
}

// Tick advances shader time by one step, copies every parameter into its
// uniform and hands the table to s for drawing.
func (a *App) Tick(s Surface) {
	a.time += a.step
	a.sync()
	s.Render(&a.uniforms)
}

func (a *App) sync() {
	p := a.Params
	u := &a.uniforms

	u.Time = float32(a.time)
	u.NumRings = float32(p.NumRings)
	u.NumSpirals = float32(p.NumSpirals)
	u.ZoomAmount = float32(p.ZoomAmount)
	u.RotateSpeed = float32(p.RotateSpeed)
	u.ColorSpread = float32(p.ColorSpread)
	u.FoldAmount = float32(p.FoldAmount)
	u.ShapeSize = float32(p.ShapeSize)

	u.ColorA = p.ColorA.Normalized()
	u.ColorB = p.ColorB.Normalized()
	u.ColorC = p.ColorC.Normalized()
}

// Resize records the new viewport and updates the resolution uniform.
// Calling it again with the same size changes nothing.
func (a *App) Resize(width, height int) {
	width, height = clampSize(width, height)
	if width == a.width && height == a.height {
		return
	}
	slog.Debug("viewport resized", "width", width, "height", height)
	a.width, a.height = width, height
	a.uniforms.Resolution = [2]float32{float32(width), float32(height)}
}

// Viewport returns the size of the backing surface.
func (a *App) Viewport() (width, height int) {
	return a.width, a.height
}

// Step returns the shader time added per tick.
func (a *App) Step() float64 { return a.step }

// Time returns the accumulated shader time.
func (a *App) Time() float64 { return a.time }

// Uniforms returns a copy of the current uniform table.
func (a *App) Uniforms() Uniforms { return a.uniforms }

// A hidden browser tab reports a 0×0 viewport.
func clampSize(width, height int) (int, int) {
	return max(width, 1), max(height, 1)
}
