package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Shape is a transformed primitive. Concrete shapes implement the
// local-space operations; Intersect and NormalAt wrap them with the
// shape's transform. Shapes are compared by interface identity, so a
// single instance must not be shared between logical objects.
type Shape interface {
	Transform() math.Matrix4
	InverseTransform() math.Matrix4
	SetTransform(m math.Matrix4) error

	Material() *shading.Material
	SetMaterial(m shading.Material)

	// LocalIntersect returns the t values where a ray already in the
	// shape's object space meets the primitive
	LocalIntersect(ray math.Ray) []float64

	// LocalNormalAt returns the outward normal at an object-space point
	LocalNormalAt(point math.Tuple) math.Tuple
}

// Intersect transforms the ray into the shape's object space and
// collects its intersections.
func Intersect(s Shape, ray math.Ray) []Intersection {
	localRay := ray.Transform(s.InverseTransform())

	ts := s.LocalIntersect(localRay)
	if len(ts) == 0 {
		return nil
	}

	xs := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: s})
	}
	return xs
}

// NormalAt returns the world-space surface normal at a world-space
// point on the shape. The inverse-transpose transform keeps normals
// perpendicular under non-uniform scaling.
func NormalAt(s Shape, worldPoint math.Tuple) math.Tuple {
	inverse := s.InverseTransform()
	localPoint := inverse.MultiplyTuple(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)

	worldNormal := inverse.Transpose().MultiplyTuple(localNormal)
	worldNormal.W = 0

	return worldNormal.Normalize()
}

// shapeCore carries the transform, its cached inverse, and the material
// shared by every concrete shape.
type shapeCore struct {
	transform math.Matrix4
	inverse   math.Matrix4
	material  shading.Material
}

func defaultShapeCore() shapeCore {
	return shapeCore{
		transform: math.IdentityMatrix(),
		inverse:   math.IdentityMatrix(),
		material:  shading.DefaultMaterial(),
	}
}

// Transform returns the object-to-world transform
func (c *shapeCore) Transform() math.Matrix4 {
	return c.transform
}

// InverseTransform returns the cached world-to-object transform
func (c *shapeCore) InverseTransform() math.Matrix4 {
	return c.inverse
}

// SetTransform assigns the shape's transform, rejecting singular
// matrices at scene-build time rather than during tracing.
func (c *shapeCore) SetTransform(m math.Matrix4) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// Material returns the shape's material
func (c *shapeCore) Material() *shading.Material {
	return &c.material
}

// SetMaterial assigns the shape's material
func (c *shapeCore) SetMaterial(m shading.Material) {
	c.material = m
}
