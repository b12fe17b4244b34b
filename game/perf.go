package game

import (
	"time"

	"github.com/calder-hay/plenia/telemetry"
)

// perfFlushSteps is how many simulation steps each perf record averages
// over.
const perfFlushSteps = 300

// perfStats accumulates per-phase step timings between flushes.
type perfStats struct {
	solve     time.Duration
	integrate time.Duration
	steps     int
}

func newPerfStats() *perfStats {
	return &perfStats{}
}

// record adds one step's phase timings.
func (p *perfStats) record(solve, integrate time.Duration) {
	p.solve += solve
	p.integrate += integrate
	p.steps++
}

// flush returns the averaged record and resets the accumulators. Returns
// false until perfFlushSteps steps have been recorded.
func (p *perfStats) flush(tick int32) (telemetry.PerfRecord, bool) {
	if p.steps < perfFlushSteps {
		return telemetry.PerfRecord{}, false
	}

	n := float64(p.steps)
	rec := telemetry.PerfRecord{
		Tick:        tick,
		SolveUs:     float64(p.solve.Microseconds()) / n,
		IntegrateUs: float64(p.integrate.Microseconds()) / n,
		TotalUs:     float64((p.solve + p.integrate).Microseconds()) / n,
	}
	p.solve = 0
	p.integrate = 0
	p.steps = 0
	return rec, true
}
