package geometry

import "sort"

// Intersection records where a ray meets a shape: the signed distance
// along the ray, and the shape itself.
type Intersection struct {
	T      float64
	Object Shape
}

// Intersections is an ordered-by-t collection of intersections
type Intersections []Intersection

// Sort orders the intersections by ascending t. Ties preserve the
// original enumeration order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest non-negative t, the
// visible surface along the ray. The second result is false when every
// intersection lies behind the ray origin.
func (xs Intersections) Hit() (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}
