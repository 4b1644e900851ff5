package physics

import (
	"math"
	"testing"
)

func TestUpdateTetherAngle_CarryAndBorrow(t *testing.T) {
	tests := []struct {
		name          string
		startAngle    AngleIndex
		startFrac     float64
		angularVel    float64
		expectedAngle AngleIndex
		expectedFrac  float64
	}{
		{"No motion", 3, 100, 0, 3, 100},
		{"Accumulate below carry", 3, 100, 50, 3, 150},
		{"Carry into index", 3, 200, 100, 4, 44},
		{"Carry wraps index", 31, 200, 100, 0, 44},
		{"Borrow from index", 3, 50, -100, 2, 206},
		{"Borrow wraps index", 0, 50, -100, 31, 206},
		{"Double carry", 5, 200, 600, 8, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewThrustState(Vector2D{})
			s.PodAttached = true
			s.Pod.AngleToPod = tt.startAngle
			s.Pod.AngleFrac = tt.startFrac
			s.Pod.AngularVel = tt.angularVel

			UpdateTetherAngle(&s)

			if s.Pod.AngleToPod != tt.expectedAngle {
				t.Errorf("AngleToPod = %d, want %d", s.Pod.AngleToPod, tt.expectedAngle)
			}
			if math.Abs(s.Pod.AngleFrac-tt.expectedFrac) > 1e-12 {
				t.Errorf("AngleFrac = %f, want %f", s.Pod.AngleFrac, tt.expectedFrac)
			}
			if s.Pod.AngleFrac < 0 || s.Pod.AngleFrac >= 256 {
				t.Errorf("AngleFrac %f outside [0,256)", s.Pod.AngleFrac)
			}
		})
	}
}

func TestUpdateTetherAngle_DetachedIsInert(t *testing.T) {
	s := NewThrustState(Vector2D{})
	s.Pod.AngularVel = 100

	UpdateTetherAngle(&s)

	if s.Pod.AngleFrac != 0 || s.Pod.AngleToPod != 0 {
		t.Errorf("pendulum integrated while detached: angle %d frac %f",
			s.Pod.AngleToPod, s.Pod.AngleFrac)
	}
}

func TestTetherDelta_PinnedValues(t *testing.T) {
	tests := []struct {
		name     string
		angle    AngleIndex
		frac     float64
		expected Vector2D
	}{
		// Zero fraction: sixteen identical samples, shifted right twice.
		{"Straight up", 0, 0, Vector2D{X: 0, Y: -4}},
		{"Straight right", 8, 0, Vector2D{X: 4, Y: 0}},
		// Half fraction: the advance splits the walk 8/8 between
		// index 0 and index 1.
		{"Half fraction", 0, 128, Vector2D{
			X: (8 * 50.0 / 256.0) / 4,
			Y: (8*-1.0 + 8*-251.0/256.0) / 4,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TetherDelta(tt.angle, tt.frac, DefaultTetherIndex)
			if math.Abs(got.X-tt.expected.X) > 1e-12 || math.Abs(got.Y-tt.expected.Y) > 1e-12 {
				t.Errorf("TetherDelta(%d,%f) = (%f,%f), want (%f,%f)",
					tt.angle, tt.frac, got.X, got.Y, tt.expected.X, tt.expected.Y)
			}
		})
	}
}

// The curve must not jump when the fraction carries into the next
// index: (a, 255) and (a+1, 0) bias-round to the same walk.
func TestTetherDelta_ContinuousAcrossCarry(t *testing.T) {
	for a := AngleIndex(0); a < AngleSteps; a++ {
		before := TetherDelta(a, 255, DefaultTetherIndex)
		after := TetherDelta(a.Offset(1), 0, DefaultTetherIndex)
		if before != after {
			t.Errorf("discontinuity at index %d: (%f,%f) vs (%f,%f)",
				a, before.X, before.Y, after.X, after.Y)
		}
	}
}

// The selective advancement flattens the curve between indices, so
// the delta magnitude is not a constant radius.
func TestTetherDelta_NotACircle(t *testing.T) {
	atIndex := TetherDelta(0, 0, DefaultTetherIndex).Length()
	between := TetherDelta(0, 120, DefaultTetherIndex).Length()
	if math.Abs(atIndex-between) < 1e-6 {
		t.Errorf("tether radius constant (%f) between indices; expected elliptical flattening", atIndex)
	}
	if between >= atIndex {
		t.Errorf("mid-index radius %f not shorter than on-index radius %f", between, atIndex)
	}
}

func TestTetherDelta_Pure(t *testing.T) {
	first := TetherDelta(7, 93, DefaultTetherIndex)
	second := TetherDelta(7, 93, DefaultTetherIndex)
	if first != second {
		t.Errorf("TetherDelta not deterministic: (%f,%f) vs (%f,%f)",
			first.X, first.Y, second.X, second.Y)
	}
}

func TestTetherDelta_SampleCountClamped(t *testing.T) {
	// Out-of-range tether indices clamp instead of walking off the
	// schedule table.
	short := TetherDelta(0, 0, 0)
	if short != (Vector2D{X: 0, Y: -0.5}) {
		t.Errorf("minimum walk = (%f,%f), want (0,-0.5)", short.X, short.Y)
	}
	long := TetherDelta(0, 0, 99)
	full := TetherDelta(0, 0, DefaultTetherIndex)
	if long != full {
		t.Errorf("oversized tether index did not clamp to the full walk")
	}
}
