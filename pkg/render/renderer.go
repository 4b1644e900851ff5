// pkg/render/renderer.go
package render

import (
	"context"

	"github.com/opd-ai/go-thrust/pkg/logging"
	"github.com/opd-ai/go-thrust/pkg/physics"
)

// Frame is the read-only view of the simulation a renderer consumes,
// built from an engine snapshot once per display frame.
type Frame struct {
	Ship        physics.Vector2D
	Pod         physics.Vector2D
	Angle       physics.AngleIndex
	PodAttached bool
	Velocity    physics.Vector2D
	Level       int
}

// FrameFromState builds a render frame from a simulation snapshot.
func FrameFromState(s physics.ThrustState) Frame {
	return Frame{
		Ship:        s.Ship,
		Pod:         s.PodPos,
		Angle:       s.Angle,
		PodAttached: s.PodAttached,
		Velocity:    s.Force,
		Level:       s.Level,
	}
}

// Renderer draws simulation frames. Implementations own their output
// surface; the engine never touches one.
type Renderer interface {
	Clear()
	RenderFrame(frame Frame)
	Present()
}

// NullRenderer is a Renderer that only logs, for headless runs.
type NullRenderer struct {
	logger *logging.Logger
}

// NewNullRenderer creates a new NullRenderer with structured logging.
func NewNullRenderer() *NullRenderer {
	return &NullRenderer{
		logger: logging.NewLogger(),
	}
}

// Clear implements Renderer.
func (d *NullRenderer) Clear() {
	d.logger.Debug(context.Background(), "Clear called")
}

// RenderFrame implements Renderer.
func (d *NullRenderer) RenderFrame(frame Frame) {
	d.logger.Debug(context.Background(), "RenderFrame called",
		"ship_x", frame.Ship.X,
		"ship_y", frame.Ship.Y,
		"angle", int(frame.Angle),
		"pod_attached", frame.PodAttached,
	)
}

// Present implements Renderer.
func (d *NullRenderer) Present() {
	d.logger.Debug(context.Background(), "Present called")
}
