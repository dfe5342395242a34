package geometry

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Plane is the infinite xz plane at y=0
type Plane struct {
	shapeCore
}

// NewPlane creates a plane with an identity transform
func NewPlane() *Plane {
	return &Plane{shapeCore: defaultShapeCore()}
}

// LocalIntersect returns the single crossing of the y=0 plane. A ray
// parallel to the plane (or inside it) never intersects.
func (p *Plane) LocalIntersect(ray math.Ray) []float64 {
	if stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y / ray.Direction.Y}
}

// LocalNormalAt is constant everywhere on the plane
func (p *Plane) LocalNormalAt(math.Tuple) math.Tuple {
	return math.NewVector(0, 1, 0)
}
