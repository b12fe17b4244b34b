package systems

import (
	"math"
	"math/rand"

	"github.com/calder-hay/plenia/components"
)

// SpawnDisc returns n positions sampled uniformly by area from a disc
// centered at (cx, cy). The rng is injected so scene setup stays a pure
// function of the seed; the solver itself never draws randomness.
func SpawnDisc(rng *rand.Rand, n int, cx, cy, radius float32) []components.Position {
	positions := make([]components.Position, n)
	for i := range positions {
		// sqrt on the radial draw gives uniform density over the disc
		// area rather than clustering at the center.
		r := radius * float32(math.Sqrt(float64(rng.Float32())))
		theta := rng.Float32() * 2 * math.Pi
		positions[i] = components.Position{
			X: cx + r*float32(math.Cos(float64(theta))),
			Y: cy + r*float32(math.Sin(float64(theta))),
		}
	}
	return positions
}
