package physics

import (
	"math"
	"testing"
)

func TestVector2D_Arithmetic(t *testing.T) {
	a := Vector2D{X: 3, Y: -4}
	b := Vector2D{X: 1, Y: 2}

	if got := a.Add(b); got != (Vector2D{X: 4, Y: -2}) {
		t.Errorf("Add = (%f,%f), want (4,-2)", got.X, got.Y)
	}
	if got := a.Sub(b); got != (Vector2D{X: 2, Y: -6}) {
		t.Errorf("Sub = (%f,%f), want (2,-6)", got.X, got.Y)
	}
	if got := a.Scale(0.5); got != (Vector2D{X: 1.5, Y: -2}) {
		t.Errorf("Scale = (%f,%f), want (1.5,-2)", got.X, got.Y)
	}
	if got := a.Neg(); got != (Vector2D{X: -3, Y: 4}) {
		t.Errorf("Neg = (%f,%f), want (-3,4)", got.X, got.Y)
	}
}

func TestVector2D_Length(t *testing.T) {
	v := Vector2D{X: 3, Y: -4}
	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Length = %f, want 5", got)
	}
	if got := (Vector2D{}).Length(); got != 0 {
		t.Errorf("zero vector Length = %f, want 0", got)
	}
}

func TestVector2D_Distance(t *testing.T) {
	a := Vector2D{X: 1, Y: 1}
	b := Vector2D{X: 4, Y: 5}
	if got := a.Distance(b); math.Abs(got-5) > 1e-12 {
		t.Errorf("Distance = %f, want 5", got)
	}
}

func TestVector2D_Manhattan(t *testing.T) {
	tests := []struct {
		name     string
		a        Vector2D
		b        Vector2D
		expected float64
	}{
		{"Same point", Vector2D{X: 2, Y: 3}, Vector2D{X: 2, Y: 3}, 0},
		{"Axis aligned", Vector2D{X: 0, Y: 0}, Vector2D{X: 5, Y: 0}, 5},
		{"Mixed signs", Vector2D{X: -1, Y: 2}, Vector2D{X: 2, Y: -2}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Manhattan(tt.b); math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Manhattan = %f, want %f", got, tt.expected)
			}
		})
	}
}
