// Package components defines ECS components for the particle simulation.
package components

// Vec2 is a planar vector. Particle motion is strictly 2-D.
type Vec2 struct {
	X, Y float32
}

// Position is a particle's world position.
type Position struct {
	X, Y float32
}

// Fields holds the per-particle field accumulators. Every value is fully
// recomputed each step by the field solver; nothing carries over between
// steps.
//
// RVal can legitimately be zero or near zero (a particle with no neighbors
// inside the repulsion cutoff under extreme parameters). Consumers that
// divide by RVal, such as the display-radius mapping CRep/(RVal*5), must
// clamp or guard on their side; the solver exposes the raw value.
type Fields struct {
	// Repulsion potential and its gradient.
	RVal  float32
	RGrad Vec2

	// Attraction (kernel) potential and its gradient.
	UVal  float32
	UGrad Vec2

	// Final energy gradient driving motion, derived from the above after
	// the pairwise pass has fully completed.
	EGrad Vec2
}

// Params is a creature's kernel configuration. Immutable after creation;
// every particle of a creature shares one Params value.
type Params struct {
	// Attraction kernel over pairwise distance.
	MuK    float32
	SigmaK float32
	WK     float32

	// Growth kernel over accumulated potential. Weight is fixed at 1.
	MuG    float32
	SigmaG float32

	// Repulsion strength.
	CRep float32
}

// DefaultParams returns the reference creature parameters.
func DefaultParams() Params {
	return Params{
		MuK:    4.0,
		SigmaK: 1.0,
		WK:     0.022,
		MuG:    0.6,
		SigmaG: 0.15,
		CRep:   1.0,
	}
}
