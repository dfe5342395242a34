package world

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Computation is the shading frame derived from one intersection of
// one ray: the hit point with its bias-offset variants, the viewing
// and surface vectors, and the refractive indices on both sides of
// the surface.
type Computation struct {
	T      float64
	Object geometry.Shape

	Point      math.Tuple
	OverPoint  math.Tuple // nudged along the normal, for shadow and reflection rays
	UnderPoint math.Tuple // nudged against the normal, for refraction rays

	EyeV     math.Tuple
	NormalV  math.Tuple
	ReflectV math.Tuple

	Inside bool
	N1     float64 // refractive index of the medium being exited
	N2     float64 // refractive index of the medium being entered
}

// PrepareComputation derives the shading frame for a hit. The full
// sorted intersection list for the ray is needed to track which
// transparent media contain the hit point.
func PrepareComputation(hit geometry.Intersection, ray math.Ray, xs geometry.Intersections) Computation {
	point := ray.Position(hit.T)
	eyeV := ray.Direction.Negate()

	normalV := geometry.NormalAt(hit.Object, point)
	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	n1, n2 := refractiveIndices(hit, xs)

	return Computation{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(normalV.Multiply(math.Epsilon)),
		UnderPoint: point.Subtract(normalV.Multiply(math.Epsilon)),
		EyeV:       eyeV,
		NormalV:    normalV,
		ReflectV:   ray.Direction.Reflect(normalV),
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices walks the sorted intersection list, maintaining
// the stack of objects the ray is currently inside. At the target
// intersection, n1 is the index of the innermost container before the
// boundary and n2 the index after it. Correct for convex,
// non-self-intersecting primitives.
func refractiveIndices(hit geometry.Intersection, xs geometry.Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	containers := make([]geometry.Shape, 0, len(xs))

	for _, x := range xs {
		atHit := x == hit

		if atHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		// Toggle membership: seeing an object already in the list
		// means the ray is exiting it.
		exited := false
		for i, container := range containers {
			if container == x.Object {
				containers = append(containers[:i], containers[i+1:]...)
				exited = true
				break
			}
		}
		if !exited {
			containers = append(containers, x.Object)
		}

		if atHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			return n1, n2
		}
	}

	return n1, n2
}

// Schlick approximates the Fresnel reflectance at the hit: the
// fraction of light that reflects rather than refracts.
func (c *Computation) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	// Total internal reflection can only occur when moving from a
	// denser into a less dense medium.
	if c.N1 > c.N2 {
		nRatio := c.N1 / c.N2
		sin2T := nRatio * nRatio * (1 - cos*cos)
		if sin2T > 1 {
			return 1
		}
		cos = stdmath.Sqrt(1 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*stdmath.Pow(1-cos, 5)
}
