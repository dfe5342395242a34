package scene

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewDefaultScene creates three spheres over a checkered, slightly
// reflective floor
func NewDefaultScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floorPattern := shading.NewCheckerPattern(
		shading.NewColor(0.85, 0.85, 0.85),
		shading.NewColor(0.25, 0.25, 0.35),
	)
	floor.Material().Pattern = floorPattern
	floor.Material().Specular = 0
	floor.Material().Reflective = 0.1

	middle := geometry.NewSphere()
	must(middle.SetTransform(math.Translation(-0.5, 1, 0.5)))
	middle.Material().Color = shading.NewColor(0.1, 0.6, 0.5)
	middle.Material().Diffuse = 0.7
	middle.Material().Specular = 0.3
	middle.Material().Reflective = 0.3

	right := geometry.NewSphere()
	must(right.SetTransform(
		math.Translation(1.5, 0.5, -0.5).Multiply(math.Scaling(0.5, 0.5, 0.5))))
	right.Material().Color = shading.NewColor(0.5, 0.1, 0.1)
	right.Material().Diffuse = 0.7
	right.Material().Specular = 0.3
	stripes := shading.NewStripePattern(
		shading.NewColor(0.8, 0.2, 0.2),
		shading.NewColor(0.95, 0.85, 0.85),
	)
	must(stripes.SetTransform(
		math.RotationZ(stdmath.Pi / 4).Multiply(math.Scaling(0.25, 0.25, 0.25))))
	right.Material().Pattern = stripes

	left := geometry.NewSphere()
	must(left.SetTransform(
		math.Translation(-1.5, 0.33, -0.75).Multiply(math.Scaling(0.33, 0.33, 0.33))))
	left.Material().Color = shading.NewColor(0.9, 0.7, 0.2)
	left.Material().Diffuse = 0.7
	left.Material().Specular = 0.3

	w := world.NewWorld()
	w.Light = shading.NewPointLight(math.NewPoint(-10, 10, -10), shading.White)
	w.AddObject(floor)
	w.AddObject(middle)
	w.AddObject(right)
	w.AddObject(left)

	camera := renderer.NewCamera(width, height, stdmath.Pi/3)
	must(camera.SetTransform(math.ViewTransform(
		math.NewPoint(0, 1.5, -5),
		math.NewPoint(0, 1, 0),
		math.NewVector(0, 1, 0),
	)))

	return &Scene{Name: "default", World: w, Camera: camera}
}
