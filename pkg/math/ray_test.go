package math

import "testing"

func TestRay_Position(t *testing.T) {
	r := NewRay(NewPoint(2, 3, 4), NewVector(1, 0, 0))

	tests := []struct {
		t        float64
		expected Tuple
	}{
		{0, NewPoint(2, 3, 4)},
		{1, NewPoint(3, 3, 4)},
		{-1, NewPoint(1, 3, 4)},
		{2.5, NewPoint(4.5, 3, 4)},
	}

	for _, tt := range tests {
		if got := r.Position(tt.t); !got.Equal(tt.expected) {
			t.Errorf("Position(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(NewPoint(1, 2, 3), NewVector(0, 1, 0))

	translated := r.Transform(Translation(3, 4, 5))
	if !translated.Origin.Equal(NewPoint(4, 6, 8)) || !translated.Direction.Equal(NewVector(0, 1, 0)) {
		t.Errorf("Unexpected translated ray %v", translated)
	}

	scaled := r.Transform(Scaling(2, 3, 4))
	if !scaled.Origin.Equal(NewPoint(2, 6, 12)) || !scaled.Direction.Equal(NewVector(0, 3, 0)) {
		t.Errorf("Unexpected scaled ray %v", scaled)
	}
}
