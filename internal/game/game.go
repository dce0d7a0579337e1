// Package game runs the flower explorer on ebiten: the window or browser
// canvas, the shader quad and the control panel.
package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/flower-explorer/internal/explorer"
)

// Game implements ebiten.Game around an explorer.App.
type Game struct {
	app   *explorer.App
	quad  *quad
	panel *panel
}

// New compiles the shader and builds the panel for app. A shader compile
// error is returned unchanged apart from context.
func New(app *explorer.App) (*Game, error) {
	q, err := newQuad()
	if err != nil {
		return nil, err
	}
	g := &Game{
		app:   app,
		quad:  q,
		panel: newPanel(app.Params),
	}
	w, _ := app.Viewport()
	g.panel.layout(w)
	return g, nil
}

func (g *Game) Update() error {
	g.panel.update()
	return nil
}

// Draw runs one frame: Tick pushes the parameters into the uniforms and draws
// the quad, then the panel goes on top.
func (g *Game) Draw(screen *ebiten.Image) {
	g.app.Tick(g.quad.target(screen))
	g.panel.draw(screen)
}

// Layout follows the outside size so the backing surface always matches the
// window or canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.app.Resize(outsideWidth, outsideHeight)
	w, h := g.app.Viewport()
	g.panel.layout(w)
	return w, h
}

// Run opens the window and blocks until it is closed.
func Run(app *explorer.App, title string) error {
	g, err := New(app)
	if err != nil {
		return err
	}

	w, h := app.Viewport()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One Update per displayed frame, so shader time follows the refresh rate.
	ebiten.SetTPS(ebiten.SyncWithFPS)

	slog.Info("starting", "width", w, "height", h, "step", app.Step())
	return ebiten.RunGame(g)
}
