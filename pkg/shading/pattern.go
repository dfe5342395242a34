package shading

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// TransformedObject is the part of a shape a pattern needs to map a
// world-space point back into the object's local frame. Shapes in the
// geometry package satisfy it implicitly.
type TransformedObject interface {
	InverseTransform() math.Matrix4
}

// Pattern produces a color as a stateless function of a local-space point
type Pattern interface {
	// At samples the pattern at a point already in pattern space
	At(point math.Tuple) Color

	Transform() math.Matrix4
	InverseTransform() math.Matrix4
	SetTransform(m math.Matrix4) error
}

// PatternAtObject samples a pattern at a world-space point on an object,
// composing the object's and the pattern's inverse transforms.
func PatternAtObject(p Pattern, object TransformedObject, worldPoint math.Tuple) Color {
	objectPoint := object.InverseTransform().MultiplyTuple(worldPoint)
	patternPoint := p.InverseTransform().MultiplyTuple(objectPoint)
	return p.At(patternPoint)
}

// PatternTransform holds a pattern's transform and its cached inverse.
// Embed it in concrete patterns to satisfy the transform methods.
type PatternTransform struct {
	transform math.Matrix4
	inverse   math.Matrix4
}

// NewPatternTransform creates an identity pattern transform
func NewPatternTransform() PatternTransform {
	return PatternTransform{
		transform: math.IdentityMatrix(),
		inverse:   math.IdentityMatrix(),
	}
}

// Transform returns the pattern's transform matrix
func (p *PatternTransform) Transform() math.Matrix4 {
	return p.transform
}

// InverseTransform returns the cached inverse of the pattern's transform
func (p *PatternTransform) InverseTransform() math.Matrix4 {
	return p.inverse
}

// SetTransform assigns the pattern's transform, rejecting singular
// matrices at scene-build time.
func (p *PatternTransform) SetTransform(m math.Matrix4) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	p.transform = m
	p.inverse = inverse
	return nil
}

// StripePattern alternates two colors in unit-wide bands along x
type StripePattern struct {
	PatternTransform
	A, B Color
}

// NewStripePattern creates a stripe pattern
func NewStripePattern(a, b Color) *StripePattern {
	return &StripePattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// At returns color A when floor(x) is even, B otherwise
func (p *StripePattern) At(point math.Tuple) Color {
	if stdmath.Mod(stdmath.Floor(point.X), 2) == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern linearly interpolates between two colors along x
type GradientPattern struct {
	PatternTransform
	A, B Color
}

// NewGradientPattern creates a gradient pattern
func NewGradientPattern(a, b Color) *GradientPattern {
	return &GradientPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// At blends from A at x=0 toward B at x=1
func (p *GradientPattern) At(point math.Tuple) Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - stdmath.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates two colors in concentric rings in the xz plane
type RingPattern struct {
	PatternTransform
	A, B Color
}

// NewRingPattern creates a ring pattern
func NewRingPattern(a, b Color) *RingPattern {
	return &RingPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// At selects by the floor of the radial distance from the y axis
func (p *RingPattern) At(point math.Tuple) Color {
	distance := stdmath.Sqrt(point.X*point.X + point.Z*point.Z)
	if stdmath.Mod(stdmath.Floor(distance), 2) == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates two colors in a 3D checkerboard
type CheckerPattern struct {
	PatternTransform
	A, B Color
}

// NewCheckerPattern creates a checker pattern
func NewCheckerPattern(a, b Color) *CheckerPattern {
	return &CheckerPattern{PatternTransform: NewPatternTransform(), A: a, B: b}
}

// At selects by the parity of the summed floored coordinates
func (p *CheckerPattern) At(point math.Tuple) Color {
	sum := stdmath.Floor(point.X) + stdmath.Floor(point.Y) + stdmath.Floor(point.Z)
	if stdmath.Mod(sum, 2) == 0 {
		return p.A
	}
	return p.B
}
