package game

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/flower-explorer/internal/config"
	"github.com/iburimskiy/flower-explorer/internal/params"
)

// DebugPrint glyphs are 6×16 pixels.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

// accent returns the panel highlight color, lightened by v in [0,1].
func accent(v float64) color.RGBA {
	c := colorful.Hsv(config.AccentHue, config.AccentSat, config.AccentValue)
	c = c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, v).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func rgba(c params.Color) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}

// channelTint is the knob color of the i-th RGB channel slider.
func channelTint(i int) color.RGBA {
	var c params.Color
	c[i] = 220
	return rgba(c)
}

func textWidth(s string) int {
	return len(s) * glyphWidth
}
