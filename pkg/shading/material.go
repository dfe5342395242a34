package shading

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Material holds a shape's Phong shading parameters. A non-nil Pattern
// overrides the flat Color.
type Material struct {
	Color           Color
	Pattern         Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64 // [0, 1]
	Transparency    float64 // [0, 1]
	RefractiveIndex float64 // > 0, 1.0 = vacuum/air
}

// DefaultMaterial returns a matte white material
func DefaultMaterial() Material {
	return Material{
		Color:           White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Lighting evaluates the Phong model at a point on an object. A nil
// light leaves the point fully unlit. When the point is shadowed only
// the ambient term contributes.
func (m *Material) Lighting(object TransformedObject, light *PointLight, point, eyeV, normalV math.Tuple, inShadow bool) Color {
	if light == nil {
		return Black
	}

	color := m.Color
	if m.Pattern != nil {
		color = PatternAtObject(m.Pattern, object, point)
	}

	effectiveColor := color.Blend(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(point).Normalize()

	// A negative cosine means the light is on the other side of the
	// surface, leaving only the ambient term.
	lightDotNormal := lightV.Dot(normalV)
	if lightDotNormal < 0 {
		return ambient
	}

	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := Black
	reflectV := lightV.Negate().Reflect(normalV)
	if reflectDotEye := reflectV.Dot(eyeV); reflectDotEye > 0 {
		factor := stdmath.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
