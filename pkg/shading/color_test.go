package shading

import "testing"

func TestColor_Arithmetic(t *testing.T) {
	c1 := NewColor(0.9, 0.6, 0.75)
	c2 := NewColor(0.7, 0.1, 0.25)

	if got := c1.Add(c2); !got.Equal(NewColor(1.6, 0.7, 1.0)) {
		t.Errorf("Expected (1.6, 0.7, 1.0), got %v", got)
	}
	if got := c1.Subtract(c2); !got.Equal(NewColor(0.2, 0.5, 0.5)) {
		t.Errorf("Expected (0.2, 0.5, 0.5), got %v", got)
	}
	if got := NewColor(0.2, 0.3, 0.4).Multiply(2); !got.Equal(NewColor(0.4, 0.6, 0.8)) {
		t.Errorf("Expected (0.4, 0.6, 0.8), got %v", got)
	}
}

func TestColor_Blend(t *testing.T) {
	c1 := NewColor(1, 0.2, 0.4)
	c2 := NewColor(0.9, 1, 0.1)

	if got := c1.Blend(c2); !got.Equal(NewColor(0.9, 0.2, 0.04)) {
		t.Errorf("Expected (0.9, 0.2, 0.04), got %v", got)
	}
}
