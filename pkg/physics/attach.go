// pkg/physics/attach.go
package physics

// The attachment solver treats the tether angle and its fraction as a
// single 13-bit value (index in the high bits, fraction in the low
// byte) and runs a successive-approximation search over it. The
// tether curve's selective advancement makes it non-invertible in
// closed form, so a search is the only option.
const (
	solverPasses      = 7
	solverSubSteps    = 3
	solverInitialStep = 0x0800
	combinedRange     = AngleSteps << 8
)

// SolveAttachment finds the tether angle and fraction whose derived
// delta best matches the target ship-from-midpoint offset, by
// Manhattan distance. Each pass probes three candidates a step apart,
// snaps to the best, backs off half a step to center between samples,
// then halves the step, carrying the high bit into the fraction byte.
// All arithmetic wraps around the full turn, so targets on either
// side of index zero converge equally. Pure function.
func SolveAttachment(target Vector2D, tetherIndex int) (AngleIndex, float64) {
	current := 0
	step := solverInitialStep

	for pass := 0; pass < solverPasses; pass++ {
		probe := current
		best := probe
		bestScore := attachmentScore(probe, target, tetherIndex)

		for sub := 1; sub < solverSubSteps; sub++ {
			probe = wrapCombined(probe + step)
			if score := attachmentScore(probe, target, tetherIndex); score < bestScore {
				best = probe
				bestScore = score
			}
		}

		current = wrapCombined(best - step/2)
		step /= 2
	}

	return AngleIndex(current >> 8), float64(current & 0xFF)
}

func attachmentScore(combined int, target Vector2D, tetherIndex int) float64 {
	delta := TetherDelta(AngleIndex(combined>>8), float64(combined&0xFF), tetherIndex)
	return delta.Manhattan(target)
}

func wrapCombined(combined int) int {
	combined %= combinedRange
	if combined < 0 {
		combined += combinedRange
	}
	return combined
}
