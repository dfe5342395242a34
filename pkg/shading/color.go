package shading

import "github.com/df07/go-whitted-raytracer/pkg/math"

// Color is an RGB triple with unbounded floating-point channels.
// Channels are only clamped to [0, 1] at image encoding time.
type Color struct {
	R, G, B float64
}

// Black is the zero color, returned for missed rays and exhausted
// recursion branches.
var Black = Color{}

// White is full-intensity light
var White = Color{R: 1, G: 1, B: 1}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Blend returns the Hadamard product of two colors
func (c Color) Blend(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equal reports whether two colors are equal within Epsilon
func (c Color) Equal(other Color) bool {
	return math.ApproxEqual(c.R, other.R) &&
		math.ApproxEqual(c.G, other.G) &&
		math.ApproxEqual(c.B, other.B)
}
