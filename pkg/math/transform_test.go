package math

import (
	"math"
	"testing"
)

func TestTransform_Translation(t *testing.T) {
	transform := Translation(5, -3, 2)
	p := NewPoint(-3, 4, 5)

	if got := transform.MultiplyTuple(p); !got.Equal(NewPoint(2, 1, 7)) {
		t.Errorf("Expected (2, 1, 7), got %v", got)
	}

	inv, err := transform.Inverse()
	if err != nil {
		t.Fatalf("Unexpected inversion error: %v", err)
	}
	if got := inv.MultiplyTuple(p); !got.Equal(NewPoint(-8, 7, 3)) {
		t.Errorf("Expected (-8, 7, 3), got %v", got)
	}

	// Translation leaves direction vectors alone
	v := NewVector(-3, 4, 5)
	if got := transform.MultiplyTuple(v); !got.Equal(v) {
		t.Errorf("Expected %v unchanged, got %v", v, got)
	}
}

func TestTransform_Scaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	if got := transform.MultiplyTuple(NewPoint(-4, 6, 8)); !got.Equal(NewPoint(-8, 18, 32)) {
		t.Errorf("Expected (-8, 18, 32), got %v", got)
	}
	if got := transform.MultiplyTuple(NewVector(-4, 6, 8)); !got.Equal(NewVector(-8, 18, 32)) {
		t.Errorf("Expected (-8, 18, 32), got %v", got)
	}

	// Reflection is scaling by a negative value
	reflection := Scaling(-1, 1, 1)
	if got := reflection.MultiplyTuple(NewPoint(2, 3, 4)); !got.Equal(NewPoint(-2, 3, 4)) {
		t.Errorf("Expected (-2, 3, 4), got %v", got)
	}
}

func TestTransform_Rotation(t *testing.T) {
	tests := []struct {
		name     string
		m        Matrix4
		p        Tuple
		expected Tuple
	}{
		{
			name:     "rotating a point around the x axis",
			m:        RotationX(math.Pi / 4),
			p:        NewPoint(0, 1, 0),
			expected: NewPoint(0, math.Sqrt2/2, math.Sqrt2/2),
		},
		{
			name:     "rotating a point around the y axis",
			m:        RotationY(math.Pi / 4),
			p:        NewPoint(0, 0, 1),
			expected: NewPoint(math.Sqrt2/2, 0, math.Sqrt2/2),
		},
		{
			name:     "rotating a point around the z axis",
			m:        RotationZ(math.Pi / 4),
			p:        NewPoint(0, 1, 0),
			expected: NewPoint(-math.Sqrt2/2, math.Sqrt2/2, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MultiplyTuple(tt.p); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestTransform_Shearing(t *testing.T) {
	transform := Shearing(1, 0, 0, 0, 0, 0)
	if got := transform.MultiplyTuple(NewPoint(2, 3, 4)); !got.Equal(NewPoint(5, 3, 4)) {
		t.Errorf("Expected (5, 3, 4), got %v", got)
	}
}

func TestTransform_Chaining(t *testing.T) {
	p := NewPoint(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	// Chained transforms apply in reverse order
	chained := c.Multiply(b).Multiply(a)
	if got := chained.MultiplyTuple(p); !got.Equal(NewPoint(15, 0, 7)) {
		t.Errorf("Expected (15, 0, 7), got %v", got)
	}
}

func TestTransform_ViewTransform(t *testing.T) {
	tests := []struct {
		name     string
		from     Tuple
		to       Tuple
		up       Tuple
		expected Matrix4
	}{
		{
			name:     "default orientation",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, -1),
			up:       NewVector(0, 1, 0),
			expected: IdentityMatrix(),
		},
		{
			name:     "looking in the positive z direction",
			from:     NewPoint(0, 0, 0),
			to:       NewPoint(0, 0, 1),
			up:       NewVector(0, 1, 0),
			expected: Scaling(-1, 1, -1),
		},
		{
			name:     "the view moves the world",
			from:     NewPoint(0, 0, 8),
			to:       NewPoint(0, 0, 0),
			up:       NewVector(0, 1, 0),
			expected: Translation(0, 0, -8),
		},
		{
			name: "an arbitrary view",
			from: NewPoint(1, 3, 2),
			to:   NewPoint(4, -2, 8),
			up:   NewVector(1, 1, 0),
			expected: Matrix4{
				{-0.50709, 0.50709, 0.67612, -2.36643},
				{0.76772, 0.60609, 0.12122, -2.82843},
				{-0.35857, 0.59761, -0.71714, 0.00000},
				{0, 0, 0, 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ViewTransform(tt.from, tt.to, tt.up); !got.Equal(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
