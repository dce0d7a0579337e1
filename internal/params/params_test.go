package params

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	assert.Equal(t, 8.0, s.NumRings)
	assert.Equal(t, 8.0, s.NumSpirals)
	assert.Equal(t, 2.0, s.ZoomAmount)
	assert.Equal(t, 2.0, s.FoldAmount)
	assert.Equal(t, 0.1, s.RotateSpeed)
	assert.Equal(t, 0.3, s.ColorSpread)
	assert.Equal(t, 1.0, s.ShapeSize)
	assert.Equal(t, Color{255, 200, 0}, s.ColorA)
	assert.Equal(t, Color{0, 200, 255}, s.ColorB)
	assert.Equal(t, Color{50, 0, 50}, s.ColorC)
}

func TestSetGetNoClamping(t *testing.T) {
	values := []float64{0, -1e6, 1e6, 0.5, -0.001, 257, math.Inf(1)}
	for _, b := range Scalars() {
		for _, v := range values {
			s := Defaults()
			require.True(t, s.Set(b.Name, v), b.Name)
			got, ok := s.Get(b.Name)
			require.True(t, ok)
			assert.Equal(t, v, got, "%s=%v", b.Name, v)
		}
	}
}

func TestSetWritesOnlyNamedField(t *testing.T) {
	s := Defaults()
	s.Set("numSpirals", 256)
	want := Defaults()
	want.NumSpirals = 256
	assert.Equal(t, want, s)
}

func TestUnknownName(t *testing.T) {
	s := Defaults()
	_, ok := s.Get("numPetals")
	assert.False(t, ok)
	assert.False(t, s.Set("numPetals", 3))
	assert.False(t, s.Set("colorA", 3))
	_, ok = s.Color("numRings")
	assert.False(t, ok)
	assert.False(t, s.SetColor("nope", Color{}))
	assert.Equal(t, Defaults(), s)
}

func TestColorAccess(t *testing.T) {
	s := Defaults()
	for _, b := range Colors() {
		c := Color{1, 2, 3}
		require.True(t, s.SetColor(b.Name, c))
		got, ok := s.Color(b.Name)
		require.True(t, ok)
		assert.Equal(t, c, got)
	}
}

func TestBindingsCoverEveryParameter(t *testing.T) {
	var names []string
	for _, b := range Scalars() {
		names = append(names, b.Name)
	}
	for _, b := range Colors() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{
		"rotateSpeed", "zoomAmount", "numRings", "numSpirals", "colorSpread",
		"foldAmount", "shapeSize", "colorA", "colorB", "colorC",
	}, names)

	for _, b := range Scalars() {
		assert.Less(t, b.Range.Min, b.Range.Max, b.Name)
		assert.Positive(t, b.Range.Step, b.Name)
	}
}

func TestNormalized(t *testing.T) {
	for c := 0; c <= 255; c++ {
		n := Color{uint8(c), uint8(c), uint8(c)}.Normalized()
		for _, v := range n {
			assert.InDelta(t, float64(c)/255, float64(v), 1e-6)
		}
	}
	assert.Equal(t, [3]float32{1, 0, 0}, Color{255, 0, 0}.Normalized())
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#ffc800", Color{255, 200, 0}.Hex())
	assert.Equal(t, "#00c8ff", Color{0, 200, 255}.Hex())
	assert.Equal(t, "#320032", Color{50, 0, 50}.Hex())
}
