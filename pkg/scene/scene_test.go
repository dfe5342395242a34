package scene

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

func TestList(t *testing.T) {
	names := List()
	expected := []string{"default", "primitives", "refraction"}

	if len(names) != len(expected) {
		t.Fatalf("Expected %d scenes, got %v", len(expected), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Expected scene %q at position %d, got %q", name, i, names[i])
		}
	}
}

func TestNew_UnknownScene(t *testing.T) {
	if _, err := New("nope", 100, 50); err == nil {
		t.Error("Expected an error for an unknown scene name")
	}
}

func TestNew_BuildsEveryScene(t *testing.T) {
	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 64, 48)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}

			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.World == nil || s.World.Light == nil || len(s.World.Objects) == 0 {
				t.Fatal("Expected a populated, lit world")
			}
			if s.Camera.HSize != 64 || s.Camera.VSize != 48 {
				t.Errorf("Expected a 64x48 camera, got %dx%d", s.Camera.HSize, s.Camera.VSize)
			}
		})
	}
}

func TestScenes_RenderSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping render smoke test in short mode")
	}

	for _, name := range List() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, 16, 12)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}

			canvas, stats := s.Camera.RenderParallel(s.World, renderer.RenderOptions{NumWorkers: 2})
			if stats.TotalPixels != 16*12 {
				t.Errorf("Expected %d pixels rendered, got %d", 16*12, stats.TotalPixels)
			}
			if canvas.Width != 16 || canvas.Height != 12 {
				t.Errorf("Expected a 16x12 canvas, got %dx%d", canvas.Width, canvas.Height)
			}
		})
	}
}
