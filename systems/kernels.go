// Package systems contains the field solver and supporting math for the
// particle simulation.
package systems

import "math"

// RepulsionCutoff is the distance beyond which the repulsion kernel is
// identically zero.
const RepulsionCutoff = 1.0

// Repulsion evaluates the short-range repulsion kernel at distance r and
// returns (value, dvalue/dr). Defined for r >= 0. Both value and derivative
// are exactly zero once r >= RepulsionCutoff.
func Repulsion(r, cRep float32) (float32, float32) {
	t := 1 - r
	if t < 0 {
		return 0, 0
	}
	return 0.5 * cRep * t * t, -cRep * t
}

// Radial evaluates a Gaussian-shaped kernel at x and returns
// (value, dvalue/dx). Used both as the attraction kernel over pairwise
// distance and as the growth kernel over accumulated potential.
func Radial(x, mu, sigma, w float32) (float32, float32) {
	t := (x - mu) / sigma
	y := w * float32(math.Exp(float64(-t*t)))
	return y, -2 * t * y / sigma
}
