// Package scene provides ready-made worlds with matching cameras for
// the command line renderer.
package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/world"
)

// Scene bundles a world with the camera that frames it
type Scene struct {
	Name   string
	World  *world.World
	Camera *renderer.Camera
}

// Builder constructs a scene for the given canvas size
type Builder func(width, height int) *Scene

var builders = map[string]Builder{
	"default":    NewDefaultScene,
	"refraction": NewRefractionScene,
	"primitives": NewPrimitivesScene,
}

// List returns the registered scene names, sorted
func List() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scene, or errors if the name is unknown
func New(name string, width, height int) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, List())
	}
	return builder(width, height), nil
}

// must panics on transform assignment errors. Scene transforms are
// fixed and invertible, so a failure here is a programming error.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
