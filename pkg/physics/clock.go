// pkg/physics/clock.go
package physics

// Simulation step constants. The integrator runs at a fixed 3/100 s
// step regardless of display rate, and a single frame's elapsed time
// is clamped so a stall never replays seconds of physics in one call.
const (
	StepSeconds  = 3.0 / 100.0
	MaxFrameTime = 0.1
)

// FixedStepClock converts variable frame times into a deterministic
// sequence of fixed-duration ticks.
type FixedStepClock struct {
	accumulator float64
}

// Advance adds the clamped frame time to the accumulator and returns
// how many whole simulation ticks are now due. Identical sequences of
// dt values always produce identical tick counts and leftover
// accumulator.
func (c *FixedStepClock) Advance(dt float64) int {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameTime {
		dt = MaxFrameTime
	}
	c.accumulator += dt

	ticks := 0
	for c.accumulator >= StepSeconds {
		c.accumulator -= StepSeconds
		ticks++
	}
	return ticks
}

// Accumulator returns the leftover sub-step time in seconds.
func (c *FixedStepClock) Accumulator() float64 {
	return c.accumulator
}

// Reset discards any accumulated sub-step time. Used on respawn so a
// stale remainder cannot fire a tick before new input arrives.
func (c *FixedStepClock) Reset() {
	c.accumulator = 0
}
