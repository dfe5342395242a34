package world

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// MaxRecursionDepth bounds the mutual recursion between reflection
// and refraction. It is the sole termination guarantee for scenes
// like two facing mirrors.
const MaxRecursionDepth = 5

// World is the scene: an optional light source and a collection of
// shapes. A world is read-only once rendering begins and may be
// shared freely across render workers.
type World struct {
	Light   *shading.PointLight
	Objects []geometry.Shape
}

// NewWorld creates an empty world with no light
func NewWorld() *World {
	return &World{}
}

// AddObject appends a shape to the scene
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// Intersect collects every shape's intersections with the ray, sorted
// by ascending t.
func (w *World) Intersect(ray math.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, object := range w.Objects {
		xs = append(xs, geometry.Intersect(object, ray)...)
	}
	xs.Sort()
	return xs
}

// IsShadowed reports whether an object sits strictly between the
// point and the light. Without a light nothing is shadowed.
func (w *World) IsShadowed(point math.Tuple) bool {
	if w.Light == nil {
		return false
	}

	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Magnitude()

	xs := w.Intersect(math.NewRay(point, toLight.Normalize()))
	hit, found := xs.Hit()
	return found && hit.T < distance
}

// ColorAt traces a ray into the scene. A miss yields black; remaining
// bounds how many more reflection/refraction bounces may contribute.
func (w *World) ColorAt(ray math.Ray, remaining int) shading.Color {
	xs := w.Intersect(ray)

	hit, found := xs.Hit()
	if !found {
		return shading.Black
	}

	comps := PrepareComputation(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit combines the surface's direct lighting with its reflected
// and refracted contributions. For materials that both reflect and
// transmit, the two are blended by the Schlick reflectance.
func (w *World) ShadeHit(comps Computation, remaining int) shading.Color {
	material := comps.Object.Material()

	surface := material.Lighting(
		comps.Object,
		w.Light,
		comps.OverPoint,
		comps.EyeV,
		comps.NormalV,
		w.IsShadowed(comps.OverPoint),
	)
	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if material.Reflective > 0 && material.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor bounces a ray off the surface from the over point.
// Exhausted recursion depth silently yields black.
func (w *World) ReflectedColor(comps Computation, remaining int) shading.Color {
	if remaining <= 0 {
		return shading.Black
	}

	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return shading.Black
	}

	reflectRay := math.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor traces the ray transmitted through the surface from
// the under point, bending it per Snell's law. Total internal
// reflection yields black, leaving everything to the reflected term.
func (w *World) RefractedColor(comps Computation, remaining int) shading.Color {
	if remaining <= 0 {
		return shading.Black
	}

	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return shading.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return shading.Black
	}

	cosT := stdmath.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := math.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}
