// pkg/physics/state.go
package physics

// ThrustInput is the per-frame player input consumed by the engine.
// Shield is carried as part of the control state but the motion
// engine does not act on it; fuel and visual collaborators read it
// downstream.
type ThrustInput struct {
	Thrust bool
	Rotate int // -1 counter-clockwise, 0 none, +1 clockwise
	Shield bool
}

// PodState is the pendulum half of the simulation. It is embedded in
// ThrustState and only meaningful while a pod is attached; on detach
// it is zeroed but retained.
type PodState struct {
	// AngleToPod is the discrete ship-to-pod angle.
	AngleToPod AngleIndex
	// AngleFrac is the fractional accumulator below AngleToPod,
	// normalized into [0,256) with carry/borrow into the index.
	AngleFrac float64
	// AngularVel is the signed pendulum rate in fraction units per
	// tick.
	AngularVel float64
	// TetherIndex selects the tether-curve sample count. Constant in
	// practice.
	TetherIndex int
}

// ThrustState is the complete integrated state of one ship (and its
// optional pod). The engine integrates Pos, the simulated midpoint:
// with no pod attached it is the ship position; with a pod attached
// ship and pod are derived as plus/minus the tether delta around it.
type ThrustState struct {
	// Pos is the integrated midpoint position in world units.
	Pos Vector2D
	// Force doubles as the per-tick velocity after drag; there is no
	// separate mass-normalized acceleration step.
	Force Vector2D
	// Angle is the ship's discrete heading.
	Angle AngleIndex
	// Tick counts simulation ticks modulo 256 and drives both the
	// rotation gate and the force-integrator slot window.
	Tick uint8

	PodAttached bool
	Pod         PodState

	// Level selects the gravity constant, clamped to [0,5].
	Level int

	// Ship and PodPos are derived every tick from Pos and the tether
	// delta. They are outputs, not authoritative state.
	Ship   Vector2D
	PodPos Vector2D
}

// NewThrustState returns a state at the given position with zeroed
// motion and the default tether geometry.
func NewThrustState(pos Vector2D) ThrustState {
	s := ThrustState{
		Pos: pos,
		Pod: PodState{TetherIndex: DefaultTetherIndex},
	}
	DerivePositions(&s)
	return s
}

// DerivePositions recomputes the ship and pod world positions from
// the midpoint. It is idempotent: calling it twice without any other
// mutation yields identical outputs.
func DerivePositions(s *ThrustState) {
	if !s.PodAttached {
		s.Ship = s.Pos
		s.PodPos = s.Pos
		return
	}
	delta := TetherDelta(s.Pod.AngleToPod, s.Pod.AngleFrac, s.Pod.TetherIndex)
	s.Ship = s.Pos.Add(delta)
	s.PodPos = s.Pos.Sub(delta)
}
