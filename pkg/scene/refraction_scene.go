package scene

import (
	stdmath "math"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/math"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/shading"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// NewRefractionScene looks straight down at a hollow glass sphere
// floating over a checkered floor. The air pocket inside the outer
// sphere bends light twice, and grazing angles go mirror-like as the
// Fresnel reflectance takes over.
func NewRefractionScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	must(floor.SetTransform(math.Translation(0, -10, 0)))
	floor.Material().Pattern = shading.NewCheckerPattern(
		shading.NewColor(0.15, 0.15, 0.15),
		shading.NewColor(0.85, 0.85, 0.85),
	)
	floor.Material().Ambient = 0.8
	floor.Material().Diffuse = 0.2
	floor.Material().Specular = 0

	outer := geometry.NewGlassSphere()
	outer.Material().Color = shading.NewColor(1, 1, 1)
	outer.Material().Ambient = 0
	outer.Material().Diffuse = 0
	outer.Material().Specular = 0.9
	outer.Material().Shininess = 300
	outer.Material().Reflective = 0.9

	// air pocket: unit refractive index inside the glass shell
	inner := geometry.NewGlassSphere()
	must(inner.SetTransform(math.Scaling(0.5, 0.5, 0.5)))
	inner.Material().Color = shading.NewColor(1, 1, 1)
	inner.Material().Ambient = 0
	inner.Material().Diffuse = 0
	inner.Material().Specular = 0.9
	inner.Material().Shininess = 300
	inner.Material().Reflective = 0.9
	inner.Material().RefractiveIndex = 1.0000034

	w := world.NewWorld()
	w.Light = shading.NewPointLight(math.NewPoint(20, 10, 0), shading.NewColor(0.7, 0.7, 0.7))
	w.AddObject(floor)
	w.AddObject(outer)
	w.AddObject(inner)

	camera := renderer.NewCamera(width, height, stdmath.Pi/3)
	must(camera.SetTransform(math.ViewTransform(
		math.NewPoint(0, 2.5, 0),
		math.NewPoint(0, 0, 0),
		math.NewVector(1, 0, 0),
	)))

	return &Scene{Name: "refraction", World: w, Camera: camera}
}
