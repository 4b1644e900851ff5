package physics

import "testing"

// stepRotation mirrors the engine's per-tick ordering for rotation:
// the tick counter advances, then the gate runs.
func stepRotation(s *ThrustState, rotate int) {
	s.Tick++
	UpdateRotation(s, rotate)
}

func TestUpdateRotation_ThreeOfFourTicks(t *testing.T) {
	s := NewThrustState(Vector2D{})

	steps := 0
	prev := s.Angle
	for i := 0; i < 16; i++ {
		stepRotation(&s, 1)
		if s.Angle != prev {
			steps++
			prev = s.Angle
		}
	}

	if steps != 12 {
		t.Errorf("16 ticks produced %d rotation steps, want 12", steps)
	}
}

func TestUpdateRotation_NeverMoreThanOneStep(t *testing.T) {
	s := NewThrustState(Vector2D{})

	for i := 0; i < 1000; i++ {
		before := s.Angle
		stepRotation(&s, 1)
		after := s.Angle

		diff := after.Sub(before)
		if diff != 0 && diff != 1 {
			t.Fatalf("tick %d: angle jumped from %d to %d", i, before, after)
		}
		if after < 0 || after >= AngleSteps {
			t.Fatalf("tick %d: angle %d outside [0,%d)", i, after, AngleSteps)
		}
	}
}

func TestUpdateRotation_Directions(t *testing.T) {
	tests := []struct {
		name     string
		rotate   int
		expected AngleIndex
	}{
		{"Clockwise", 1, 1},
		{"Counter-clockwise", -1, 31},
		{"No input", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewThrustState(Vector2D{})
			// Tick 1 is an eligible tick (counter & 3 != 0).
			stepRotation(&s, tt.rotate)
			if s.Angle != tt.expected {
				t.Errorf("angle after one eligible tick = %d, want %d", s.Angle, tt.expected)
			}
		})
	}
}

// Holding rotate for 128 ticks fires the gate on 96 of them, and
// 96 mod 32 = 0, so the heading lands back where it started.
func TestUpdateRotation_FullRotationScenario(t *testing.T) {
	s := NewThrustState(Vector2D{})
	s.Angle = 5

	for i := 0; i < 128; i++ {
		stepRotation(&s, 1)
	}

	if s.Angle != 5 {
		t.Errorf("angle after 128 held ticks = %d, want 5", s.Angle)
	}
}

func TestUpdateRotation_IneligibleTickHoldsHeading(t *testing.T) {
	s := NewThrustState(Vector2D{})
	s.Tick = 3 // next tick increments to 4, a gated tick

	stepRotation(&s, 1)
	if s.Angle != 0 {
		t.Errorf("angle changed on gated tick, got %d", s.Angle)
	}
}
