package geometry

import (
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/math"
)

func TestCube_LocalIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    math.Tuple
		direction math.Tuple
		t1, t2    float64
	}{
		{"+x face", math.NewPoint(5, 0.5, 0), math.NewVector(-1, 0, 0), 4, 6},
		{"-x face", math.NewPoint(-5, 0.5, 0), math.NewVector(1, 0, 0), 4, 6},
		{"+y face", math.NewPoint(0.5, 5, 0), math.NewVector(0, -1, 0), 4, 6},
		{"-y face", math.NewPoint(0.5, -5, 0), math.NewVector(0, 1, 0), 4, 6},
		{"+z face", math.NewPoint(0.5, 0, 5), math.NewVector(0, 0, -1), 4, 6},
		{"-z face", math.NewPoint(0.5, 0, -5), math.NewVector(0, 0, 1), 4, 6},
		{"origin inside", math.NewPoint(0, 0.5, 0), math.NewVector(0, 0, 1), -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCube()
			ts := c.LocalIntersect(math.NewRay(tt.origin, tt.direction))

			if len(ts) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(ts))
			}
			if !math.ApproxEqual(ts[0], tt.t1) || !math.ApproxEqual(ts[1], tt.t2) {
				t.Errorf("Expected t values %f and %f, got %f and %f", tt.t1, tt.t2, ts[0], ts[1])
			}
		})
	}
}

func TestCube_LocalIntersectMiss(t *testing.T) {
	tests := []struct {
		origin    math.Tuple
		direction math.Tuple
	}{
		{math.NewPoint(-2, 0, 0), math.NewVector(0.2673, 0.5345, 0.8018)},
		{math.NewPoint(0, -2, 0), math.NewVector(0.8018, 0.2673, 0.5345)},
		{math.NewPoint(0, 0, -2), math.NewVector(0.5345, 0.8018, 0.2673)},
		{math.NewPoint(2, 0, 2), math.NewVector(0, 0, -1)},
		{math.NewPoint(0, 2, 2), math.NewVector(0, -1, 0)},
		{math.NewPoint(2, 2, 0), math.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		c := NewCube()
		if ts := c.LocalIntersect(math.NewRay(tt.origin, tt.direction)); len(ts) != 0 {
			t.Errorf("Expected miss for ray from %v toward %v, got %v", tt.origin, tt.direction, ts)
		}
	}
}

func TestCube_LocalNormalAt(t *testing.T) {
	tests := []struct {
		point    math.Tuple
		expected math.Tuple
	}{
		{math.NewPoint(1, 0.5, -0.8), math.NewVector(1, 0, 0)},
		{math.NewPoint(-1, -0.2, 0.9), math.NewVector(-1, 0, 0)},
		{math.NewPoint(-0.4, 1, -0.1), math.NewVector(0, 1, 0)},
		{math.NewPoint(0.3, -1, -0.7), math.NewVector(0, -1, 0)},
		{math.NewPoint(-0.6, 0.3, 1), math.NewVector(0, 0, 1)},
		{math.NewPoint(0.4, 0.4, -1), math.NewVector(0, 0, -1)},
		{math.NewPoint(1, 1, 1), math.NewVector(1, 0, 0)},
		{math.NewPoint(-1, -1, -1), math.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		c := NewCube()
		if got := c.LocalNormalAt(tt.point); !got.Equal(tt.expected) {
			t.Errorf("LocalNormalAt(%v): expected %v, got %v", tt.point, tt.expected, got)
		}
	}
}
