package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/flower-explorer/internal/explorer"
	"github.com/iburimskiy/flower-explorer/internal/shader"
)

// quad draws the flower shader over the whole screen.
type quad struct {
	shader *ebiten.Shader
	dst    *ebiten.Image
	opts   ebiten.DrawRectShaderOptions
}

func newQuad() (*quad, error) {
	s, err := ebiten.NewShader(shader.Source)
	if err != nil {
		return nil, fmt.Errorf("compiling flower shader: %w", err)
	}
	return &quad{shader: s}, nil
}

// target sets the image the next Render draws into.
func (q *quad) target(dst *ebiten.Image) *quad {
	q.dst = dst
	return q
}

// Render implements explorer.Surface.
func (q *quad) Render(u *explorer.Uniforms) {
	if q.dst == nil {
		return
	}
	b := q.dst.Bounds()
	q.opts.Uniforms = u.Kage()
	q.dst.DrawRectShader(b.Dx(), b.Dy(), q.shader, &q.opts)
}
