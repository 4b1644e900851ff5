// cmd/thrust/systems.go
package main

import (
	"sync"
	"time"

	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-thrust/pkg/engine"
	"github.com/opd-ai/go-thrust/pkg/physics"
	"github.com/opd-ai/go-thrust/pkg/render"
)

// keyHold is how long a key press counts as held. Terminals deliver
// key presses without release events, so held keys are emulated by
// the auto-repeat refreshing the expiry.
const keyHold = 150 * time.Millisecond

// inputTracker folds asynchronous key events into the ThrustInput the
// engine reads once per frame.
type inputTracker struct {
	mu          sync.Mutex
	thrustUntil time.Time
	leftUntil   time.Time
	rightUntil  time.Time
	shieldUntil time.Time
}

func (t *inputTracker) press(action string, now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	until := now.Add(keyHold)
	switch action {
	case "thrust":
		t.thrustUntil = until
	case "left":
		t.leftUntil = until
	case "right":
		t.rightUntil = until
	case "shield":
		t.shieldUntil = until
	}
}

func (t *inputTracker) current(now time.Time) physics.ThrustInput {
	t.mu.Lock()
	defer t.mu.Unlock()

	in := physics.ThrustInput{
		Thrust: now.Before(t.thrustUntil),
		Shield: now.Before(t.shieldUntil),
	}
	if now.Before(t.rightUntil) {
		in.Rotate++
	}
	if now.Before(t.leftUntil) {
		in.Rotate--
	}
	return in
}

// motionSystem drives the thrust engine from the shared input state.
type motionSystem struct {
	engine *engine.Engine
	input  *inputTracker
}

// Update implements ecs.System.
func (s *motionSystem) Update(dt float32) {
	s.engine.Update(float64(dt), s.input.current(time.Now()))
}

// Remove implements ecs.System.
func (s *motionSystem) Remove(ecs.BasicEntity) {}

// renderSystem snapshots the engine and hands a frame to the
// renderer, keeping the camera on the ship.
type renderSystem struct {
	engine   *engine.Engine
	renderer *render.TerminalRenderer
}

// Update implements ecs.System.
func (s *renderSystem) Update(dt float32) {
	frame := render.FrameFromState(s.engine.Snapshot())
	s.renderer.SetCenter(frame.Ship)
	s.renderer.Clear()
	s.renderer.RenderFrame(frame)
	s.renderer.Present()
}

// Remove implements ecs.System.
func (s *renderSystem) Remove(ecs.BasicEntity) {}
