package systems

import "github.com/calder-hay/plenia/components"

// IntegratePositions advances each particle one explicit Euler step down
// its energy gradient: pos += dt * (-E_grad). Runs single-threaded in
// index order so results are deterministic; each particle reads only its
// own field state.
func IntegratePositions(positions []components.Position, fields []components.Fields, dt float32) {
	for i := range positions {
		positions[i].X -= dt * fields[i].EGrad.X
		positions[i].Y -= dt * fields[i].EGrad.Y
	}
}

// DisplayRadius maps a particle's accumulated repulsion to a rendered
// marker radius, clamped to [minR, maxR]. The clamp is presentation
// policy: RVal near zero is a legitimate solver output and would blow up
// the division.
func DisplayRadius(cRep, rVal, minR, maxR float32) float32 {
	if rVal*5*maxR <= cRep {
		return maxR
	}
	r := cRep / (rVal * 5)
	if r < minR {
		return minR
	}
	return r
}
