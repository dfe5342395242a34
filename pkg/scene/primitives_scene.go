package scene

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewPrimitivesScene lines up one of each primitive: a cube pedestal,
// a capped cylinder, a cone, and a reflective sphere, over a ringed
// floor.
func NewPrimitivesScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	rings := shading.NewRingPattern(
		shading.NewColor(0.6, 0.6, 0.65),
		shading.NewColor(0.3, 0.3, 0.4),
	)
	must(rings.SetTransform(math.Scaling(0.8, 0.8, 0.8)))
	floor.Material().Pattern = rings
	floor.Material().Specular = 0.1
	floor.Material().Reflective = 0.05

	pedestal := geometry.NewCube()
	must(pedestal.SetTransform(
		math.Translation(-2.2, 0.5, 1).
			Multiply(math.RotationY(stdmath.Pi / 6)).
			Multiply(math.Scaling(0.5, 0.5, 0.5))))
	pedestal.Material().Color = shading.NewColor(0.25, 0.35, 0.55)
	pedestal.Material().Specular = 0.2

	cylinder := geometry.NewBoundedCylinder(0, 1.5, true)
	must(cylinder.SetTransform(
		math.Translation(0, 0, 1.5).Multiply(math.Scaling(0.6, 1, 0.6))))
	gradient := shading.NewGradientPattern(
		shading.NewColor(0.9, 0.5, 0.1),
		shading.NewColor(0.2, 0.1, 0.5),
	)
	must(gradient.SetTransform(
		math.Translation(-1, 0, 0).Multiply(math.Scaling(2, 1, 1))))
	cylinder.Material().Pattern = gradient
	cylinder.Material().Specular = 0.4
	cylinder.Material().Shininess = 50

	cone := geometry.NewBoundedCone(-1, 0, true)
	must(cone.SetTransform(
		math.Translation(2.2, 1, 1).Multiply(math.Scaling(0.7, 1, 0.7))))
	cone.Material().Color = shading.NewColor(0.6, 0.2, 0.2)
	cone.Material().Diffuse = 0.8
	cone.Material().Specular = 0.3

	mirror := geometry.NewSphere()
	must(mirror.SetTransform(
		math.Translation(0, 0.75, -1).Multiply(math.Scaling(0.75, 0.75, 0.75))))
	mirror.Material().Color = shading.NewColor(0.1, 0.1, 0.1)
	mirror.Material().Diffuse = 0.3
	mirror.Material().Specular = 1
	mirror.Material().Shininess = 300
	mirror.Material().Reflective = 0.9

	w := world.NewWorld()
	w.Light = shading.NewPointLight(math.NewPoint(-8, 10, -10), shading.White)
	w.AddObject(floor)
	w.AddObject(pedestal)
	w.AddObject(cylinder)
	w.AddObject(cone)
	w.AddObject(mirror)

	camera := renderer.NewCamera(width, height, stdmath.Pi/3)
	must(camera.SetTransform(math.ViewTransform(
		math.NewPoint(0, 2.5, -6),
		math.NewPoint(0, 0.75, 0),
		math.NewVector(0, 1, 0),
	)))

	return &Scene{Name: "primitives", World: w, Camera: camera}
}
