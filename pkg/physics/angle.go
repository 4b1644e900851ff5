// pkg/physics/angle.go
package physics

import "math"

// AngleSteps is the number of discrete headings in a full turn.
const AngleSteps = 32

// AngleIndex is a discrete heading in [0,32). Index 0 points up
// (negative Y, screen coordinates) and indices increase clockwise.
type AngleIndex int

// Offset advances the index by the given number of steps, wrapping
// modulo 32. Negative steps wrap through 31, never below zero.
func (a AngleIndex) Offset(steps int) AngleIndex {
	i := (int(a) + steps) % AngleSteps
	if i < 0 {
		i += AngleSteps
	}
	return AngleIndex(i)
}

// Sub returns the index difference (a - other) wrapped into [0,32).
func (a AngleIndex) Sub(other AngleIndex) AngleIndex {
	return a.Offset(-int(other))
}

// Radians converts the discrete heading to radians, measured
// clockwise from straight up.
func (a AngleIndex) Radians() float64 {
	return float64(a) / AngleSteps * 2 * math.Pi
}

// Heading vectors come from 32-entry tables of signed fixed-point
// bytes with 8 fractional bits. The integer values are kept verbatim
// and converted to float64 once at package init.
var (
	angleTableX = [AngleSteps]int{
		0, 50, 98, 142, 181, 213, 237, 251,
		256, 251, 237, 213, 181, 142, 98, 50,
		0, -50, -98, -142, -181, -213, -237, -251,
		-256, -251, -237, -213, -181, -142, -98, -50,
	}
	angleTableY = [AngleSteps]int{
		-256, -251, -237, -213, -181, -142, -98, -50,
		0, 50, 98, 142, 181, 213, 237, 251,
		256, 251, 237, 213, 181, 142, 98, 50,
		0, -50, -98, -142, -181, -213, -237, -251,
	}

	angleVectors [AngleSteps]Vector2D
)

const fixedPointScale = 256.0

func init() {
	for i := 0; i < AngleSteps; i++ {
		angleVectors[i] = Vector2D{
			X: float64(angleTableX[i]) / fixedPointScale,
			Y: float64(angleTableY[i]) / fixedPointScale,
		}
	}
}

// AngleVector returns the unit heading vector for a discrete angle.
// Indices outside [0,32) are wrapped first, so any integer is valid.
func AngleVector(a AngleIndex) Vector2D {
	return angleVectors[a.Offset(0)]
}
