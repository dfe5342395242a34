package geometry

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Cylinder is a radius-1 cylinder around the y axis, truncated to
// (Minimum, Maximum) and optionally closed with end caps.
type Cylinder struct {
	shapeCore
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeCore: defaultShapeCore(),
		Minimum:   stdmath.Inf(-1),
		Maximum:   stdmath.Inf(1),
	}
}

// NewBoundedCylinder creates a cylinder truncated to (min, max),
// closed with end caps when requested.
func NewBoundedCylinder(min, max float64, closed bool) *Cylinder {
	c := NewCylinder()
	c.Minimum = min
	c.Maximum = max
	c.Closed = closed
	return c
}

// LocalIntersect collects side-wall hits within the height bounds plus
// any end-cap hits. A ray parallel to the y axis can only hit caps.
func (c *Cylinder) LocalIntersect(ray math.Ray) []float64 {
	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	if stdmath.Abs(a) < math.Epsilon {
		return c.intersectCaps(ray, nil)
	}

	b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
	cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return nil
	}

	sqrtD := stdmath.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	var ts []float64
	if y0 := ray.Origin.Y + t0*ray.Direction.Y; c.Minimum < y0 && y0 < c.Maximum {
		ts = append(ts, t0)
	}
	if y1 := ray.Origin.Y + t1*ray.Direction.Y; c.Minimum < y1 && y1 < c.Maximum {
		ts = append(ts, t1)
	}

	return c.intersectCaps(ray, ts)
}

// intersectCaps appends hits on the two bounding planes that land
// within the unit disk.
func (c *Cylinder) intersectCaps(ray math.Ray, ts []float64) []float64 {
	if !c.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return ts
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		ts = append(ts, t)
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, 1) {
		ts = append(ts, t)
	}

	return ts
}

// LocalNormalAt is radial on the side wall, ±y on a cap
func (c *Cylinder) LocalNormalAt(point math.Tuple) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= c.Maximum-math.Epsilon {
		return math.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+math.Epsilon {
		return math.NewVector(0, -1, 0)
	}
	return math.NewVector(point.X, 0, point.Z)
}

// checkCap reports whether the ray at t lands within a cap of the
// given radius.
func checkCap(ray math.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}
