package explorer

// Uniforms is the GPU-visible state of the flower shader: time, viewport
// resolution and one slot per parameter. Colors are normalized to [0,1].
type Uniforms struct {
	Time       float32
	Resolution [2]float32

	ZoomAmount  float32
	RotateSpeed float32
	NumRings    float32
	NumSpirals  float32
	ColorSpread float32
	FoldAmount  float32
	ShapeSize   float32

	ColorA [3]float32
	ColorB [3]float32
	ColorC [3]float32
}

// initialUniforms are the values the table holds before the first tick.
// colorSpread starts at 8 here while the store default is 0.3; the store wins
// from the first tick on.
func initialUniforms(width, height int) Uniforms {
	return Uniforms{
		Resolution:  [2]float32{float32(width), float32(height)},
		RotateSpeed: 0.2,
		ZoomAmount:  2,
		NumRings:    8,
		NumSpirals:  8,
		ColorSpread: 8,
		FoldAmount:  2,
		ShapeSize:   1,
	}
}

// Kage returns the uniform map for ebiten's DrawRectShaderOptions, keyed by
// the exported variable names of the shader.
func (u *Uniforms) Kage() map[string]any {
	return map[string]any{
		"Time":        u.Time,
		"Resolution":  u.Resolution[:],
		"ZoomAmount":  u.ZoomAmount,
		"RotateSpeed": u.RotateSpeed,
		"NumRings":    u.NumRings,
		"NumSpirals":  u.NumSpirals,
		"ColorSpread": u.ColorSpread,
		"FoldAmount":  u.FoldAmount,
		"ShapeSize":   u.ShapeSize,
		"ColorA":      u.ColorA[:],
		"ColorB":      u.ColorB[:],
		"ColorC":      u.ColorC[:],
	}
}
