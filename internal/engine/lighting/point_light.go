// Package lighting provides point light data for the viewer shader.
package lighting

// PointLight represents a point light source for GPU upload.
type PointLight struct {
	Position  [3]float32 // World position
	Color     [3]float32 // RGB color (0-1 range)
	Range     float32    // Light radius/falloff distance
	Intensity float32    // Light intensity multiplier
}

// Default returns the demo scene light: white, above and beside the
// shapes, matching the reference scene.
func Default() PointLight {
	return PointLight{
		Position:  [3]float32{8, 16, 8},
		Color:     [3]float32{1, 1, 1},
		Range:     100,
		Intensity: 9000,
	}
}
