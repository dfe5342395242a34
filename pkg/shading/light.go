package shading

import "github.com/df07/go-whitted-raytracer/pkg/math"

// PointLight is a single omnidirectional light source
type PointLight struct {
	Position  math.Tuple
	Intensity Color
}

// NewPointLight creates a point light at the given position
func NewPointLight(position math.Tuple, intensity Color) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}
