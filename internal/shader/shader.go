// Package shader embeds the Kage source of the flower fragment shader.
package shader

import _ "embed"

// Source is the fragment stage. The vertex stage is ebiten's pass-through of
// position and texture coordinate.
//
//go:embed flower.kage
var Source []byte

// Uniforms lists the uniform variables Source declares, in declaration order.
var Uniforms = []string{
	"Time",
	"Resolution",
	"ZoomAmount",
	"RotateSpeed",
	"NumRings",
	"NumSpirals",
	"ColorSpread",
	"FoldAmount",
	"ShapeSize",
	"ColorA",
	"ColorB",
	"ColorC",
}
