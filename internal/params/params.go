// Package params holds the tunable values of the flower shader and the static
// table binding each of them to a panel widget.
package params

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGB triple as edited by the panel.
type Color [3]uint8

// Normalized maps each channel from [0,255] to [0,1].
func (c Color) Normalized() [3]float32 {
	return [3]float32{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
	}
}

// Colorful returns c as a go-colorful color.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}
}

// Hex formats c as #rrggbb.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Store is the current value of every parameter. Writes are not validated:
// the panel ranges are advisory and anything written here reaches the shader.
type Store struct {
	NumRings    float64
	NumSpirals  float64
	ZoomAmount  float64
	FoldAmount  float64
	RotateSpeed float64
	ColorSpread float64
	ShapeSize   float64

	ColorA Color
	ColorB Color
	ColorC Color
}

// Defaults returns a store holding the startup values.
func Defaults() *Store {
	return &Store{
		NumRings:    8,
		NumSpirals:  8,
		ZoomAmount:  2,
		FoldAmount:  2,
		RotateSpeed: 0.1,
		ColorSpread: 0.3,
		ShapeSize:   1.0,

		ColorA: Color{255, 200, 0},
		ColorB: Color{0, 200, 255},
		ColorC: Color{50, 0, 50},
	}
}

// Get returns the scalar parameter called name.
func (s *Store) Get(name string) (float64, bool) {
	b, ok := LookupScalar(name)
	if !ok {
		return 0, false
	}
	return b.Get(s), true
}

// Set writes the scalar parameter called name. It reports false when no such
// scalar exists.
func (s *Store) Set(name string, v float64) bool {
	b, ok := LookupScalar(name)
	if !ok {
		return false
	}
	b.Set(s, v)
	return true
}

// Color returns the color parameter called name.
func (s *Store) Color(name string) (Color, bool) {
	b, ok := LookupColor(name)
	if !ok {
		return Color{}, false
	}
	return b.Get(s), true
}

// SetColor writes the color parameter called name.
func (s *Store) SetColor(name string, c Color) bool {
	b, ok := LookupColor(name)
	if !ok {
		return false
	}
	b.Set(s, c)
	return true
}
