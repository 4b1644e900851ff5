// pkg/physics/pendulum.go
package physics

// DefaultTetherIndex is the tether-curve sample count, the full
// length of the advance schedule.
const DefaultTetherIndex = 15

// advanceSchedule gates the selective angle advancement inside
// TetherDelta. Entry values are the nonzero top nibbles of the
// biased angle fraction; the walk consults them in descending order
// so a larger fraction advances the sample angle earlier, which keeps
// the curve continuous across the fraction carry into the next index.
var advanceSchedule = [15]int{
	0x10, 0x20, 0x30, 0x40, 0x50, 0x60, 0x70, 0x80,
	0x90, 0xA0, 0xB0, 0xC0, 0xD0, 0xE0, 0xF0,
}

// applyTorque couples the ship's facing relative to the ship-to-pod
// axis into the pendulum rate: thrusting off-axis from the pod spins
// it, thrusting along the axis does not.
func applyTorque(s *ThrustState) {
	podAngle := s.Pod.AngleToPod
	if s.Pod.AngleFrac >= 128 {
		podAngle = podAngle.Offset(1)
	}
	diff := s.Angle.Sub(podAngle)
	tangential := AngleVector(diff).X * 8
	s.Pod.AngularVel += tangential / 2
}

// UpdateTetherAngle integrates the pendulum rate into the fractional
// accumulator every tick, carrying overflow and borrowing underflow
// into the discrete ship-to-pod angle.
func UpdateTetherAngle(s *ThrustState) {
	if !s.PodAttached {
		return
	}
	s.Pod.AngleFrac += s.Pod.AngularVel
	for s.Pod.AngleFrac >= 256 {
		s.Pod.AngleFrac -= 256
		s.Pod.AngleToPod = s.Pod.AngleToPod.Offset(1)
	}
	for s.Pod.AngleFrac < 0 {
		s.Pod.AngleFrac += 256
		s.Pod.AngleToPod = s.Pod.AngleToPod.Offset(-1)
	}
}

// TetherDelta derives the offset of the ship from the simulated
// midpoint for a given tether angle; the pod sits at the negated
// offset. It accumulates heading-table samples along the tether,
// advancing the sample angle at the single walk step selected by the
// top nibble of the rounded fraction. The selective advancement is
// what makes the tether curve elliptical rather than a plain radius.
// Pure function: no state is touched.
func TetherDelta(angle AngleIndex, frac float64, tetherIndex int) Vector2D {
	steps := tetherIndex
	if steps < 1 {
		steps = 1
	}
	if steps > len(advanceSchedule) {
		steps = len(advanceSchedule)
	}

	// Bias the fraction by +8 so the nibble comparison rounds rather
	// than truncates, carrying into a working copy of the angle.
	biased := int(frac) + 8
	a := angle
	if biased >= 256 {
		biased -= 256
		a = a.Offset(1)
	}
	key := biased & 0xF0

	sum := AngleVector(a)
	for step := 1; step <= steps; step++ {
		if key == advanceSchedule[steps-step] {
			a = a.Offset(1)
		}
		sum = sum.Add(AngleVector(a))
	}

	// Arithmetic shift right by 2 on the fixed-point grid.
	return sum.Scale(0.25)
}
