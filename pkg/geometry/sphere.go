package geometry

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Sphere is a unit sphere centered on the object-space origin
type Sphere struct {
	shapeCore
}

// NewSphere creates a unit sphere with an identity transform
func NewSphere() *Sphere {
	return &Sphere{shapeCore: defaultShapeCore()}
}

// NewGlassSphere creates a sphere with a fully transparent glass material
func NewGlassSphere() *Sphere {
	s := NewSphere()
	s.material.Transparency = 1.0
	s.material.RefractiveIndex = 1.5
	return s
}

// LocalIntersect solves |O + tD|² = 1 for the unit sphere. A tangent
// ray yields two equal t values.
func (s *Sphere) LocalIntersect(ray math.Ray) []float64 {
	sphereToRay := ray.Origin.Subtract(math.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// LocalNormalAt returns the vector from the origin to the point
func (s *Sphere) LocalNormalAt(point math.Tuple) math.Tuple {
	return point.Subtract(math.NewPoint(0, 0, 0))
}
