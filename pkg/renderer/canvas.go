package renderer

import (
	"image"
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/shading"
)

// Canvas is a rectangular grid of linear colors. Pixels are stored
// unclamped; values are clamped to [0, 1] only when exported.
type Canvas struct {
	Width  int
	Height int
	pixels []shading.Color
}

// NewCanvas creates a canvas of the given size, initialized to black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]shading.Color, width*height),
	}
}

// WritePixel stores a color at (x, y). Writes outside the canvas are
// ignored.
func (c *Canvas) WritePixel(x, y int, color shading.Color) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = color
}

// PixelAt returns the color stored at (x, y)
func (c *Canvas) PixelAt(x, y int) shading.Color {
	return c.pixels[y*c.Width+x]
}

// ToImage converts the canvas to an 8-bit RGBA image, clamping each
// channel to [0, 1].
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			offset := img.PixOffset(x, y)
			img.Pix[offset+0] = channelByte(p.R)
			img.Pix[offset+1] = channelByte(p.G)
			img.Pix[offset+2] = channelByte(p.B)
			img.Pix[offset+3] = 255
		}
	}
	return img
}

func channelByte(v float64) uint8 {
	return uint8(stdmath.Round(stdmath.Min(1, stdmath.Max(0, v)) * 255))
}
