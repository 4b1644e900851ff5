// pkg/render/terminal.go
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/opd-ai/go-thrust/pkg/physics"
)

// TerminalRenderer draws the ship, pod, and tether to a tcell screen.
// Terminal cells are roughly twice as tall as wide, so world Y is
// compressed by half to keep the tether visually round.
type TerminalRenderer struct {
	screen tcell.Screen
	scale  float64
	center physics.Vector2D
	status string
}

// NewTerminalRenderer creates a renderer on an initialized screen.
// scale is world units per character cell.
func NewTerminalRenderer(screen tcell.Screen, scale float64) *TerminalRenderer {
	if scale <= 0 {
		scale = 1
	}
	return &TerminalRenderer{
		screen: screen,
		scale:  scale,
	}
}

// SetCenter sets the world position mapped to the middle of the
// screen. Camera logic feeds the ship position here each frame.
func (r *TerminalRenderer) SetCenter(pos physics.Vector2D) {
	r.center = pos
}

// worldToScreen converts world coordinates to screen cells.
func (r *TerminalRenderer) worldToScreen(pos physics.Vector2D) (int, int) {
	width, height := r.screen.Size()
	x := int((pos.X-r.center.X)/r.scale) + width/2
	y := int((pos.Y-r.center.Y)/(r.scale*2)) + height/2
	return x, y
}

// Clear implements Renderer.
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}

// RenderFrame implements Renderer.
func (r *TerminalRenderer) RenderFrame(frame Frame) {
	if frame.PodAttached {
		r.drawTether(frame.Ship, frame.Pod)
		x, y := r.worldToScreen(frame.Pod)
		r.setCell(x, y, 'O', tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	x, y := r.worldToScreen(frame.Ship)
	r.setCell(x, y, shipRune(frame.Angle), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	r.status = fmt.Sprintf(" level %d  angle %2d  vel %+6.2f %+6.2f ",
		frame.Level, int(frame.Angle), frame.Velocity.X, frame.Velocity.Y)
	r.drawStatus()
}

// Present implements Renderer.
func (r *TerminalRenderer) Present() {
	r.screen.Show()
}

// shipRune picks a glyph for the ship's heading quadrant.
func shipRune(angle physics.AngleIndex) rune {
	switch {
	case angle >= 28 || angle < 4:
		return '^'
	case angle < 12:
		return '>'
	case angle < 20:
		return 'v'
	default:
		return '<'
	}
}

// drawTether walks the line between ship and pod in world space and
// plots a dot per sample.
func (r *TerminalRenderer) drawTether(ship, pod physics.Vector2D) {
	const samples = 8
	step := pod.Sub(ship).Scale(1.0 / samples)
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 1; i < samples; i++ {
		x, y := r.worldToScreen(ship.Add(step.Scale(float64(i))))
		r.setCell(x, y, '.', style)
	}
}

func (r *TerminalRenderer) drawStatus() {
	_, height := r.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for i, ch := range r.status {
		r.setCell(i, height-1, ch, style)
	}
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	width, height := r.screen.Size()
	if x < 0 || x >= width || y < 0 || y >= height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
