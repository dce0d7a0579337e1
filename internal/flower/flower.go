// Package flower is a CPU mirror of the flower fragment shader. It renders
// the same pattern as the Kage program without a GPU, for headless snapshots
// and for checking the shader math in tests.
package flower

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/iburimskiy/flower-explorer/internal/explorer"
)

const twoPi = 6.28318530718

func spiral(u mgl32.Vec2, a, r, t, d float32) float32 {
	return math32.Abs(math32.Sin(t + r*u.Len() + a*(d*math32.Atan2(u.Y(), u.X()))))
}

func flower(u mgl32.Vec2, a, r, t float32) float32 {
	return spiral(u, a, r, t, 1) * spiral(u, a, r, t, -1)
}

func sinp(a float32) float32 {
	return .5 + math32.Sin(a)*.5
}

func polar(a, t float32) mgl32.Vec2 {
	return mgl32.Vec2{math32.Cos(t), math32.Sin(t)}.Mul(a)
}

func fract(v float32) float32 {
	return v - math32.Floor(v)
}

func mix(x, y mgl32.Vec3, a float32) mgl32.Vec3 {
	return x.Mul(1 - a).Add(y.Mul(a))
}

// Shade returns the color of the pixel whose center is at (x, y), measured
// from the bottom-left corner of the viewport like gl_FragCoord.
func Shade(u *explorer.Uniforms, x, y float32) mgl32.Vec3 {
	w, h := u.Resolution[0], u.Resolution[1]

	st := mgl32.Vec2{(2*x - w) / h, (2*y - h) / h}
	st = mgl32.Rotate2D(u.Time * u.RotateSpeed).Mul2x1(st)
	st = st.Mul(u.ZoomAmount)
	st = mgl32.Vec2{fract(st.X()) - .5, fract(st.Y()) - .5}

	var col mgl32.Vec3
	t := u.Time

	for i := 0; i < 3; i++ {
		for j := 0; j < 16; j++ {
			a := float32(j) * twoPi / 16
			t += u.ColorSpread * flower(st.Add(polar(u.ShapeSize, a)), u.NumSpirals, u.NumRings, u.Time/10)
		}
		col[i] = math32.Sin(5*t + st.Len()*u.FoldAmount*sinp(t))
	}

	mix1 := mix(col, mgl32.Vec3(u.ColorA), col[0])
	mix2 := mix(mix1, mgl32.Vec3(u.ColorB), col[1])
	return mix(mix2, mgl32.Vec3(u.ColorC), col[2])
}
