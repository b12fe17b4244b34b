package systems

import (
	"math"
	"testing"

	"github.com/calder-hay/plenia/components"
)

func TestIntegratePositions(t *testing.T) {
	positions := []components.Position{{X: 1, Y: 2}, {X: -3, Y: 0}}
	fields := []components.Fields{
		{EGrad: components.Vec2{X: 1, Y: -2}},
		{EGrad: components.Vec2{X: 0, Y: 0.5}},
	}

	IntegratePositions(positions, fields, 0.1)

	// Motion runs down the gradient: pos += dt * (-E_grad)
	want := []components.Position{{X: 0.9, Y: 2.2}, {X: -3, Y: -0.05}}
	for i := range positions {
		if math.Abs(float64(positions[i].X-want[i].X)) > 1e-6 ||
			math.Abs(float64(positions[i].Y-want[i].Y)) > 1e-6 {
			t.Errorf("particle %d: position = %+v, want %+v", i, positions[i], want[i])
		}
	}
}

func TestIntegrateZeroGradientHolds(t *testing.T) {
	positions := []components.Position{{X: 5, Y: -5}}
	fields := []components.Fields{{}}

	IntegratePositions(positions, fields, 0.1)

	if positions[0] != (components.Position{X: 5, Y: -5}) {
		t.Errorf("particle moved with zero gradient: %+v", positions[0])
	}
}

func TestDisplayRadius(t *testing.T) {
	// Nominal: c_rep / (R_val * 5)
	if r := DisplayRadius(1.0, 0.5, 0.05, 2.0); math.Abs(float64(r-0.4)) > 1e-6 {
		t.Errorf("DisplayRadius(1, 0.5) = %f, want 0.4", r)
	}

	// Near-zero repulsion must clamp, not blow up
	if r := DisplayRadius(1.0, 0, 0.05, 2.0); r != 2.0 {
		t.Errorf("DisplayRadius with zero RVal = %f, want max clamp 2.0", r)
	}
	if r := DisplayRadius(1.0, 1e-9, 0.05, 2.0); r != 2.0 {
		t.Errorf("DisplayRadius with tiny RVal = %f, want max clamp 2.0", r)
	}

	// Very crowded particle clamps to the minimum
	if r := DisplayRadius(1.0, 100, 0.05, 2.0); r != 0.05 {
		t.Errorf("DisplayRadius with huge RVal = %f, want min clamp 0.05", r)
	}
}
