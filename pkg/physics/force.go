// pkg/physics/force.go
package physics

// Force integration runs on 6 fixed slots of each 16-tick window; the
// remaining slots are left free for collision and sound work, so
// gravity, thrust, and drag only ever accumulate at this cadence.
var activeSlots = [16]bool{
	0: true, 3: true, 5: true, 8: true, 11: true, 13: true,
}

// torqueSkipSlots marks the two active slots that never apply
// pendulum torque, one per half-window.
var torqueSkipSlots = [16]bool{
	5: true, 13: true,
}

// Mass shifts: thrust acceleration is the heading vector arithmetic-
// shifted right, one extra shift while towing a pod.
const (
	massShiftSolo   = 16.0 // 2^4
	massShiftTowing = 32.0 // 2^5
)

// Drag factors, expressed as shift amounts. Vertical motion decays
// far slower than horizontal.
const (
	linearDragX = 1.0 / 64.0
	linearDragY = 1.0 / 256.0
	angularDrag = 1.0 / 64.0
)

// DefaultGravityTable holds the per-level downward pull in world
// units per tick, one entry per level 0..5, as n/256 fixed-point
// constants.
var DefaultGravityTable = [6]float64{
	7.0 / 256.0,
	8.0 / 256.0,
	9.0 / 256.0,
	10.0 / 256.0,
	12.0 / 256.0,
	14.0 / 256.0,
}

// ClampLevel clamps a level selection into the valid [0,5] range.
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > len(DefaultGravityTable)-1 {
		return len(DefaultGravityTable) - 1
	}
	return level
}

// UpdateForces runs one tick of the force integrator. On an active
// slot it accumulates gravity, thrust, pendulum torque, and drag into
// the force vector; on every tick the force vector is applied as the
// per-tick velocity.
func UpdateForces(s *ThrustState, in ThrustInput, gravity float64) {
	slot := s.Tick & 0x0F
	if activeSlots[slot] {
		s.Force.Y += gravity

		if in.Thrust {
			shift := massShiftSolo
			if s.PodAttached {
				shift = massShiftTowing
			}
			heading := AngleVector(s.Angle)
			s.Force.X += heading.X / shift
			s.Force.Y += heading.Y / shift

			if s.PodAttached && !torqueSkipSlots[slot] {
				applyTorque(s)
			}
		}

		if s.PodAttached {
			s.Pod.AngularVel *= 1 - angularDrag
		}
		s.Force.X *= 1 - linearDragX
		s.Force.Y *= 1 - linearDragY
	}

	s.Pos = s.Pos.Add(s.Force)
}
