package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeFraction(t *testing.T) {
	r := Range{Min: -10, Max: 10, Step: 0.01}
	assert.Equal(t, 0.0, r.Fraction(-10))
	assert.Equal(t, 0.5, r.Fraction(0))
	assert.Equal(t, 1.0, r.Fraction(10))
	assert.Equal(t, 0.0, r.Fraction(-50))
	assert.Equal(t, 1.0, r.Fraction(50))
	assert.Equal(t, 0.0, Range{Min: 1, Max: 1}.Fraction(1))
}

func TestRangeValue(t *testing.T) {
	tests := []struct {
		r    Range
		frac float64
		want float64
	}{
		{Range{Min: 2, Max: 256, Step: 2}, 0, 2},
		{Range{Min: 2, Max: 256, Step: 2}, 1, 256},
		{Range{Min: 2, Max: 256, Step: 2}, 0.5, 130},
		{Range{Min: 2, Max: 40, Step: 0.25}, 0.1, 5.75},
		{Range{Min: 2, Max: 40, Step: 0.25}, -1, 2},
		{Range{Min: 2, Max: 40, Step: 0.25}, 2, 40},
		{Range{Min: 0.01, Max: 10, Step: 0.1}, 1, 10},
		{Range{Min: 0.01, Max: 10, Step: 0.1}, 1.99 / 9.99, 2},
		{Range{Min: 0.01, Max: 10, Step: 0.1}, 0, 0.01},
		{Range{Min: -10, Max: 10, Step: 0.01}, 0.505, 0.1},
		{Range{Min: 0, Max: 1}, 0.37, 0.37},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.r.Value(tt.frac), 1e-9, "%+v @ %v", tt.r, tt.frac)
	}
}

func TestRangeReachesDefaults(t *testing.T) {
	for _, b := range Scalars() {
		def, _ := Defaults().Get(b.Name)
		assert.InDelta(t, def, b.Range.Value(b.Range.Fraction(def)), 1e-9, b.Name)
	}
}

func TestRangeRoundTrip(t *testing.T) {
	for _, b := range Scalars() {
		def, _ := Defaults().Get(b.Name)
		v := b.Range.Value(b.Range.Fraction(def))
		assert.InDelta(t, def, v, b.Range.Step/2+1e-9, b.Name)
	}
}

func TestRangeFormat(t *testing.T) {
	assert.Equal(t, "0.10", Range{Min: -10, Max: 10, Step: 0.01}.Format(0.1))
	assert.Equal(t, "2.0", Range{Min: 0.01, Max: 10, Step: 0.1}.Format(2))
	assert.Equal(t, "8.25", Range{Min: 2, Max: 40, Step: 0.25}.Format(8.25))
	assert.Equal(t, "130", Range{Min: 2, Max: 256, Step: 2}.Format(130))
	assert.Equal(t, "200", ChannelRange.Format(200))
	assert.Equal(t, "1.50", Range{Min: 0, Max: 2}.Format(1.5))
}
