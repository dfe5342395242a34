package geometry

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Cube is the axis-aligned cube spanning [-1, 1] on every axis
type Cube struct {
	shapeCore
}

// NewCube creates a cube with an identity transform
func NewCube() *Cube {
	return &Cube{shapeCore: defaultShapeCore()}
}

// LocalIntersect runs the slab test: the largest per-axis entry time
// against the smallest per-axis exit time.
func (c *Cube) LocalIntersect(ray math.Ray) []float64 {
	xMin, xMax := checkAxis(ray.Origin.X, ray.Direction.X)
	yMin, yMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	zMin, zMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := stdmath.Max(xMin, stdmath.Max(yMin, zMin))
	tMax := stdmath.Min(xMax, stdmath.Min(yMax, zMax))

	if tMin > tMax {
		return nil
	}
	return []float64{tMin, tMax}
}

// LocalNormalAt picks the face whose axis coordinate has the largest
// magnitude at the point.
func (c *Cube) LocalNormalAt(point math.Tuple) math.Tuple {
	maxC := stdmath.Max(stdmath.Abs(point.X), stdmath.Max(stdmath.Abs(point.Y), stdmath.Abs(point.Z)))

	switch maxC {
	case stdmath.Abs(point.X):
		return math.NewVector(point.X, 0, 0)
	case stdmath.Abs(point.Y):
		return math.NewVector(0, point.Y, 0)
	default:
		return math.NewVector(0, 0, point.Z)
	}
}

// checkAxis returns the entry/exit times for one slab. A near-zero
// direction component projects to ±infinity with the numerator's sign.
func checkAxis(origin, direction float64) (float64, float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	var tMin, tMax float64
	if stdmath.Abs(direction) >= math.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * stdmath.Inf(1)
		tMax = tMaxNumerator * stdmath.Inf(1)
	}

	if tMin > tMax {
		return tMax, tMin
	}
	return tMin, tMax
}
