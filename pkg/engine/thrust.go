// pkg/engine/thrust.go
package engine

import (
	"context"

	"github.com/opd-ai/go-thrust/pkg/config"
	"github.com/opd-ai/go-thrust/pkg/event"
	"github.com/opd-ai/go-thrust/pkg/logging"
	"github.com/opd-ai/go-thrust/pkg/physics"
)

// Engine owns exactly one ThrustState and advances it in fixed steps.
// It is the only entry point that mutates the state; collaborators
// (renderer, camera, pickup logic) read the derived outputs and feed
// back input, attach/detach triggers, and level selection.
//
// The engine is synchronous and not safe for concurrent use; the
// surrounding game loop must serialize access.
type Engine struct {
	state   physics.ThrustState
	clock   physics.FixedStepClock
	gravity []float64
	events  *event.Bus
	logger  *logging.Logger
}

// New creates an engine from the given configuration. A nil config
// selects the canonical defaults, which carry the classic fixed-point
// flight constants exactly.
func New(cfg *config.SimConfig) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	state := physics.NewThrustState(physics.Vector2D{X: cfg.Start.X, Y: cfg.Start.Y})
	state.Angle = physics.AngleIndex(cfg.Start.Angle).Offset(0)
	state.Pod.TetherIndex = cfg.TetherIndex

	gravity := make([]float64, len(cfg.Levels))
	for i, level := range cfg.Levels {
		gravity[i] = level.Gravity
	}

	return &Engine{
		state:   state,
		gravity: gravity,
		events:  event.NewEventBus(),
		logger:  logging.NewLogger(),
	}
}

// Update advances the simulation by the elapsed frame time, running
// zero or more fixed ticks, and returns how many ticks ran. Within a
// tick the order is fixed and observable: rotation gate, force
// integration, angular integration, position derivation.
func (e *Engine) Update(dt float64, in physics.ThrustInput) int {
	ticks := e.clock.Advance(dt)
	for i := 0; i < ticks; i++ {
		e.step(in)
	}
	return ticks
}

func (e *Engine) step(in physics.ThrustInput) {
	e.state.Tick++
	physics.UpdateRotation(&e.state, in.Rotate)
	physics.UpdateForces(&e.state, in, e.gravity[e.state.Level])
	physics.UpdateTetherAngle(&e.state)
	physics.DerivePositions(&e.state)
}

// AttachPod captures a pod at the given world position. The tether
// angle is solved so its derived delta best matches the actual
// ship-to-pod separation, then the midpoint is anchored so the ship
// keeps its exact pre-capture position; the pod lands wherever the
// converged tether places it. Captured momentum is shared across the
// doubled mass by halving the force vector.
//
// Calling AttachPod while a pod is already attached re-solves from
// scratch against the current derived ship position, as if the pod
// had been detached first.
func (e *Engine) AttachPod(podX, podY float64) {
	ship := e.state.Ship
	pod := physics.Vector2D{X: podX, Y: podY}
	midpoint := ship.Add(pod).Scale(0.5)
	target := ship.Sub(midpoint)

	e.state.PodAttached = true
	e.state.Pod.AngleToPod, e.state.Pod.AngleFrac =
		physics.SolveAttachment(target, e.state.Pod.TetherIndex)

	delta := physics.TetherDelta(e.state.Pod.AngleToPod, e.state.Pod.AngleFrac,
		e.state.Pod.TetherIndex)
	e.state.Pos = ship.Sub(delta)
	e.state.Force = e.state.Force.Scale(0.5)
	e.state.Pod.AngularVel = 0

	physics.DerivePositions(&e.state)

	e.logger.Debug(context.Background(), "pod attached",
		"angle", int(e.state.Pod.AngleToPod),
		"angleFrac", e.state.Pod.AngleFrac,
	)
	e.events.Publish(event.NewPodEvent(event.PodAttached, e, e.state.Ship, e.state.PodPos))
}

// DetachPod releases the pod. The ship keeps its current position and
// momentum; the pendulum terms are cleared. No-op when no pod is
// attached.
func (e *Engine) DetachPod() {
	if !e.state.PodAttached {
		return
	}

	shipPos := e.state.Ship
	podPos := e.state.PodPos
	e.state.Pos = shipPos
	e.state.PodAttached = false
	e.state.Pod.AngularVel = 0
	e.state.Pod.AngleFrac = 0

	physics.DerivePositions(&e.state)

	e.logger.Debug(context.Background(), "pod detached")
	e.events.Publish(event.NewPodEvent(event.PodDetached, e, shipPos, podPos))
}

// ResetMotion zeroes the force vector, the pendulum terms, and the
// time accumulator while preserving position, angle, and level. Used
// on respawn.
func (e *Engine) ResetMotion() {
	e.state.Force = physics.Vector2D{}
	e.state.Pod.AngularVel = 0
	e.state.Pod.AngleFrac = 0
	e.clock.Reset()

	physics.DerivePositions(&e.state)

	e.events.Publish(&event.BaseEvent{EventType: event.MotionReset, Source: e})
}

// SetLevel selects the gravity constant, clamping to the valid range.
func (e *Engine) SetLevel(level int) {
	level = physics.ClampLevel(level)
	if level == e.state.Level {
		return
	}

	old := e.state.Level
	e.state.Level = level

	e.logger.Info(context.Background(), "level changed", "old", old, "new", level)
	e.events.Publish(event.NewLevelEvent(e, old, level))
}

// ShipPosition returns the derived ship world position.
func (e *Engine) ShipPosition() physics.Vector2D {
	return e.state.Ship
}

// PodPosition returns the derived pod world position. Equal to the
// ship position when no pod is attached.
func (e *Engine) PodPosition() physics.Vector2D {
	return e.state.PodPos
}

// Velocity returns the force vector, which doubles as the per-tick
// velocity. Camera and scroll logic use it as a velocity proxy.
func (e *Engine) Velocity() physics.Vector2D {
	return e.state.Force
}

// Angle returns the ship's discrete heading.
func (e *Engine) Angle() physics.AngleIndex {
	return e.state.Angle
}

// AngleRadians returns the ship's heading in radians.
func (e *Engine) AngleRadians() float64 {
	return e.state.Angle.Radians()
}

// PodAttached reports whether a pod is currently in tow.
func (e *Engine) PodAttached() bool {
	return e.state.PodAttached
}

// Level returns the current gravity level.
func (e *Engine) Level() int {
	return e.state.Level
}

// Snapshot returns a copy of the full simulation state. Consumers
// only ever read snapshots; the engine's own state is never aliased.
func (e *Engine) Snapshot() physics.ThrustState {
	return e.state
}

// EventBus returns the bus the engine publishes lifecycle events on.
func (e *Engine) EventBus() *event.Bus {
	return e.events
}
