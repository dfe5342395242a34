package geometry

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Cone is a double-napped cone around the y axis with its apex at the
// origin, truncated to (Minimum, Maximum) and optionally capped. The
// cap radius at a bounding plane equals the plane's |y|.
type Cone struct {
	shapeCore
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double cone
func NewCone() *Cone {
	return &Cone{
		shapeCore: defaultShapeCore(),
		Minimum:   stdmath.Inf(-1),
		Maximum:   stdmath.Inf(1),
	}
}

// NewBoundedCone creates a cone truncated to (min, max), closed with
// end caps when requested.
func NewBoundedCone(min, max float64, closed bool) *Cone {
	c := NewCone()
	c.Minimum = min
	c.Maximum = max
	c.Closed = closed
	return c
}

// LocalIntersect solves the y²-weighted quadratic for the cone walls.
// When the quadratic degenerates to a linear equation (ray parallel to
// one of the cone's halves) there is a single wall hit.
func (c *Cone) LocalIntersect(ray math.Ray) []float64 {
	d := ray.Direction
	o := ray.Origin

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	cc := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	if stdmath.Abs(a) < math.Epsilon {
		if stdmath.Abs(b) < math.Epsilon {
			return c.intersectCaps(ray, nil)
		}
		return c.intersectCaps(ray, []float64{-cc / (2 * b)})
	}

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
	if y0 := o.Y + t0*d.Y; c.Minimum < y0 && y0 < c.Maximum {
		ts = append(ts, t0)
	}
	if y1 := o.Y + t1*d.Y; c.Minimum < y1 && y1 < c.Maximum {
		ts = append(ts, t1)
	}

	return c.intersectCaps(ray, ts)
}

// intersectCaps appends hits on the bounding planes. Unlike the
// cylinder, each cap's radius equals the plane's distance from the apex.
func (c *Cone) intersectCaps(ray math.Ray, ts []float64) []float64 {
	if !c.Closed || stdmath.Abs(ray.Direction.Y) < math.Epsilon {
		return ts
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, stdmath.Abs(c.Minimum)) {
		ts = append(ts, t)
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t, stdmath.Abs(c.Maximum)) {
		ts = append(ts, t)
	}

	return ts
}

// LocalNormalAt is ±y on a cap; on the wall the y component equals the
// radial distance, pointing away from the apex.
func (c *Cone) LocalNormalAt(point math.Tuple) math.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < c.Maximum*c.Maximum && point.Y >= c.Maximum-math.Epsilon {
		return math.NewVector(0, 1, 0)
	}
	if dist < c.Minimum*c.Minimum && point.Y <= c.Minimum+math.Epsilon {
		return math.NewVector(0, -1, 0)
	}

	y := stdmath.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return math.NewVector(point.X, y, point.Z)
}
