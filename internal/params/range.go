package params

import (
	"math"
	"strconv"
	"strings"
)

// Range is the advisory min/max/step of a slider. It only shapes the widget;
// Store accepts values outside it.
type Range struct {
	Min, Max, Step float64
}

// Fraction returns where v sits on the slider track, clamped to [0,1].
func (r Range) Fraction(v float64) float64 {
	if r.Max <= r.Min {
		return 0
	}
	return clamp01((v - r.Min) / (r.Max - r.Min))
}

// Value maps a track position in [0,1] to a value rounded to a multiple of
// Step, then clamped to the range.
func (r Range) Value(frac float64) float64 {
	v := r.Min + clamp01(frac)*(r.Max-r.Min)
	if r.Step > 0 {
		v = math.Round(v/r.Step) * r.Step
	}
	return math.Min(math.Max(v, r.Min), r.Max)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ChannelRange is the slider range of one 8-bit color channel.
var ChannelRange = Range{Min: 0, Max: 255, Step: 1}

// Format renders v with as many decimals as Step has.
func (r Range) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', r.decimals(), 64)
}

func (r Range) decimals() int {
	if r.Step <= 0 {
		return 2
	}
	s := strconv.FormatFloat(r.Step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
