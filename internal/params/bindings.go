package params

// ScalarBinding ties a float parameter to a slider.
type ScalarBinding struct {
	Name  string
	Range Range
	Get   func(*Store) float64
	Set   func(*Store, float64)
}

// ColorBinding ties a color parameter to a color picker.
type ColorBinding struct {
	Name string
	Get  func(*Store) Color
	Set  func(*Store, Color)
}

// Panel order.
var scalars = []ScalarBinding{
	{
		Name:  "rotateSpeed",
		Range: Range{Min: -10, Max: 10, Step: 0.01},
		Get:   func(s *Store) float64 { return s.RotateSpeed },
		Set:   func(s *Store, v float64) { s.RotateSpeed = v },
	},
	{
		Name:  "zoomAmount",
		Range: Range{Min: 0.01, Max: 10, Step: 0.1},
		Get:   func(s *Store) float64 { return s.ZoomAmount },
		Set:   func(s *Store, v float64) { s.ZoomAmount = v },
	},
	{
		Name:  "numRings",
		Range: Range{Min: 2, Max: 40, Step: 0.25},
		Get:   func(s *Store) float64 { return s.NumRings },
		Set:   func(s *Store, v float64) { s.NumRings = v },
	},
	{
		Name:  "numSpirals",
		Range: Range{Min: 2, Max: 256, Step: 2},
		Get:   func(s *Store) float64 { return s.NumSpirals },
		Set:   func(s *Store, v float64) { s.NumSpirals = v },
	},
	{
		Name:  "colorSpread",
		Range: Range{Min: 0.01, Max: 5, Step: 0.05},
		Get:   func(s *Store) float64 { return s.ColorSpread },
		Set:   func(s *Store, v float64) { s.ColorSpread = v },
	},
	{
		Name:  "foldAmount",
		Range: Range{Min: 1, Max: 16, Step: 0.25},
		Get:   func(s *Store) float64 { return s.FoldAmount },
		Set:   func(s *Store, v float64) { s.FoldAmount = v },
	},
	{
		Name:  "shapeSize",
		Range: Range{Min: 1, Max: 8, Step: 0.01},
		Get:   func(s *Store) float64 { return s.ShapeSize },
		Set:   func(s *Store, v float64) { s.ShapeSize = v },
	},
}

var colors = []ColorBinding{
	{
		Name: "colorA",
		Get:  func(s *Store) Color { return s.ColorA },
		Set:  func(s *Store, c Color) { s.ColorA = c },
	},
	{
		Name: "colorB",
		Get:  func(s *Store) Color { return s.ColorB },
		Set:  func(s *Store, c Color) { s.ColorB = c },
	},
	{
		Name: "colorC",
		Get:  func(s *Store) Color { return s.ColorC },
		Set:  func(s *Store, c Color) { s.ColorC = c },
	},
}

// Scalars returns the slider bindings in panel order. The slice is shared;
// callers must not modify it.
func Scalars() []ScalarBinding { return scalars }

// Colors returns the color bindings in panel order.
func Colors() []ColorBinding { return colors }

// LookupScalar finds a scalar binding by parameter name.
func LookupScalar(name string) (ScalarBinding, bool) {
	for _, b := range scalars {
		if b.Name == name {
			return b, true
		}
	}
	return ScalarBinding{}, false
}

// LookupColor finds a color binding by parameter name.
func LookupColor(name string) (ColorBinding, bool) {
	for _, b := range colors {
		if b.Name == name {
			return b, true
		}
	}
	return ColorBinding{}, false
}
