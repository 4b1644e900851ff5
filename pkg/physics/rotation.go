// pkg/physics/rotation.go
package physics

// rotationMask gates heading changes to three of every four ticks,
// the cadence the slot system leaves free for rotation work.
const rotationMask = 0x03

// UpdateRotation advances the heading by at most one step per
// eligible tick in the direction of the rotate input. Runs before
// force integration within a tick, so a rotation this tick affects
// this tick's thrust direction.
func UpdateRotation(s *ThrustState, rotate int) {
	if s.Tick&rotationMask == 0 || rotate == 0 {
		return
	}
	if rotate > 0 {
		s.Angle = s.Angle.Offset(1)
	} else {
		s.Angle = s.Angle.Offset(-1)
	}
}
