package renderer

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

// Camera generates rays for rendering. The view transform maps world
// space into camera space; rays are built by pushing pixel centers
// through its cached inverse onto the canvas plane at z=-1.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64

	transform  math.Matrix4
	inverse    math.Matrix4
	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for a canvas of hsize by vsize pixels
// with the given horizontal field of view in radians. The camera
// starts at the origin looking down -z.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   math.IdentityMatrix(),
		inverse:     math.IdentityMatrix(),
	}

	halfView := stdmath.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c
}

// Transform returns the camera's view transform
func (c *Camera) Transform() math.Matrix4 {
	return c.transform
}

// SetTransform assigns the view transform, caching its inverse.
// A singular matrix is rejected.
func (c *Camera) SetTransform(m math.Matrix4) error {
	inverse, err := m.Inverse()
	if err != nil {
		return err
	}
	c.transform = m
	c.inverse = inverse
	return nil
}

// PixelSize returns the world-space size of one canvas pixel
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel builds the world-space ray through the center of the
// pixel at (px, py).
func (c *Camera) RayForPixel(px, py int) math.Ray {
	// offsets from the canvas edge to the pixel center
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	// untransformed canvas coordinates; +x is to the left because the
	// camera looks down -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyTuple(math.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyTuple(math.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return math.NewRay(origin, direction)
}
