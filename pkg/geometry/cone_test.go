package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

func TestCone_LocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		t0, t1    float64
	}{
		{"straight through", math.NewPoint(0, 0, -5), math.NewVector(0, 0, 1), 5, 5},
		{"at an angle", math.NewPoint(0, 0, -5), math.NewVector(1, 1, 1), 8.66025, 8.66025},
		{"through both halves", math.NewPoint(1, 1, -5), math.NewVector(-0.5, -1, 1), 4.55006, 49.44994},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCone()
			r := math.NewRay(tt.origin, tt.direction.Normalize())
			ts := c.LocalIntersect(r)

			if len(ts) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(ts))
			}
			if !math.ApproxEqual(ts[0], tt.t0) || !math.ApproxEqual(ts[1], tt.t1) {
				t.Errorf("Expected t values %f and %f, got %f and %f", tt.t0, tt.t1, ts[0], ts[1])
			}
		})
	}
}

func TestCone_RayParallelToOneHalf(t *testing.T) {
	c := NewCone()
	direction := math.NewVector(0, 1, 1).Normalize()
	r := math.NewRay(math.NewPoint(0, 0, -1), direction)

	ts := c.LocalIntersect(r)
	if len(ts) != 1 {
		t.Fatalf("Expected 1 intersection, got %d", len(ts))
	}
	if !math.ApproxEqual(ts[0], 0.35355) {
		t.Errorf("Expected t=0.35355, got %f", ts[0])
	}
}

func TestCone_CappedIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		count     int
	}{
		{"parallel miss", math.NewPoint(0, 0, -5), math.NewVector(0, 1, 0), 0},
		{"through wall and cap", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 1), 2},
		{"along the axis through both caps and walls", math.NewPoint(0, 0, -0.25), math.NewVector(0, 1, 0), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewBoundedCone(-0.5, 0.5, true)
			r := math.NewRay(tt.origin, tt.direction.Normalize())
			if ts := c.LocalIntersect(r); len(ts) != tt.count {
				t.Errorf("Expected %d intersections, got %d", tt.count, len(ts))
			}
		})
	}
}

func TestCone_LocalNormalAt(t *testing.T) {
	c := NewCone()

	tests := []struct {
		point    math.Tuple
		expected math.Tuple
	}{
		{math.NewPoint(1, 1, 1), math.NewVector(1, -1.41421, 1)},
		{math.NewPoint(-1, -1, 0), math.NewVector(-1, 1, 0)},
	}

	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.Equal(tt.expected) {
			t.Errorf("LocalNormalAt(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}

func TestCone_CapNormals(t *testing.T) {
	c := NewBoundedCone(-2, 2, true)

	tests := []struct {
		point    math.Tuple
		expected math.Tuple
	}{
		{math.NewPoint(0, 2, 0), math.NewVector(0, 1, 0)},
		{math.NewPoint(1, 2, 0.5), math.NewVector(0, 1, 0)},
		{math.NewPoint(0, -2, 0), math.NewVector(0, -1, 0)},
		{math.NewPoint(-1, -2, 0.5), math.NewVector(0, -1, 0)},
	}

	for _, tt := range tests {
		if got := c.LocalNormalAt(tt.point); !got.Equal(tt.expected) {
			t.Errorf("LocalNormalAt(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
