package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/calder-hay/plenia/components"
)

// WindowStats holds aggregated field statistics sampled at the end of a
// stats window.
type WindowStats struct {
	WindowEndTick int32   `csv:"window_end"`
	SimTimeSec    float64 `csv:"sim_time"`

	Creatures int `csv:"creatures"`
	Particles int `csv:"particles"`

	// Repulsion field distribution across all particles
	RValMean float64 `csv:"r_val_mean"`
	RValP10  float64 `csv:"r_val_p10"`
	RValP50  float64 `csv:"r_val_p50"`
	RValP90  float64 `csv:"r_val_p90"`

	// Attraction potential distribution
	UValMean float64 `csv:"u_val_mean"`
	UValStd  float64 `csv:"u_val_std"`

	// Energy gradient magnitude (how much the creature is still moving)
	EGradMean float64 `csv:"e_grad_mean"`
	EGradMax  float64 `csv:"e_grad_max"`

	// RMS distance from creature centroid, averaged over creatures
	SpreadRMS float64 `csv:"spread_rms"`
}

// CreatureSample is one creature's state handed to the collector at the
// end of a step. Positions and Fields are indexed identically.
type CreatureSample struct {
	Positions []components.Position
	Fields    []components.Fields
}

// computeWindowStats aggregates field statistics over every particle of
// every creature.
func computeWindowStats(tick int32, simTime float64, creatures []CreatureSample) WindowStats {
	ws := WindowStats{
		WindowEndTick: tick,
		SimTimeSec:    simTime,
		Creatures:     len(creatures),
	}

	for _, c := range creatures {
		ws.Particles += len(c.Fields)
	}
	if ws.Particles == 0 {
		return ws
	}

	rVals := make([]float64, 0, ws.Particles)
	uVals := make([]float64, 0, ws.Particles)
	eMags := make([]float64, 0, ws.Particles)

	var spreadSum float64
	for _, c := range creatures {
		for i := range c.Fields {
			f := &c.Fields[i]
			rVals = append(rVals, float64(f.RVal))
			uVals = append(uVals, float64(f.UVal))
			eMags = append(eMags, math.Hypot(float64(f.EGrad.X), float64(f.EGrad.Y)))
		}
		spreadSum += spreadRMS(c.Positions)
	}

	sort.Float64s(rVals)
	ws.RValMean = stat.Mean(rVals, nil)
	ws.RValP10 = stat.Quantile(0.1, stat.Empirical, rVals, nil)
	ws.RValP50 = stat.Quantile(0.5, stat.Empirical, rVals, nil)
	ws.RValP90 = stat.Quantile(0.9, stat.Empirical, rVals, nil)

	ws.UValMean, ws.UValStd = stat.MeanStdDev(uVals, nil)
	if len(uVals) < 2 {
		ws.UValStd = 0
	}

	ws.EGradMean = stat.Mean(eMags, nil)
	for _, m := range eMags {
		if m > ws.EGradMax {
			ws.EGradMax = m
		}
	}

	ws.SpreadRMS = spreadSum / float64(len(creatures))
	return ws
}

// spreadRMS returns the root-mean-square distance of a creature's
// particles from their centroid.
func spreadRMS(positions []components.Position) float64 {
	if len(positions) == 0 {
		return 0
	}

	var cx, cy float64
	for _, p := range positions {
		cx += float64(p.X)
		cy += float64(p.Y)
	}
	cx /= float64(len(positions))
	cy /= float64(len(positions))

	var sum float64
	for _, p := range positions {
		dx := float64(p.X) - cx
		dy := float64(p.Y) - cy
		sum += dx*dx + dy*dy
	}
	return math.Sqrt(sum / float64(len(positions)))
}

// Log emits the window stats through slog.
func (ws *WindowStats) Log() {
	slog.Info("window stats",
		"tick", ws.WindowEndTick,
		"sim_time", ws.SimTimeSec,
		"particles", ws.Particles,
		"r_val_mean", ws.RValMean,
		"r_val_p50", ws.RValP50,
		"u_val_mean", ws.UValMean,
		"e_grad_mean", ws.EGradMean,
		"e_grad_max", ws.EGradMax,
		"spread_rms", ws.SpreadRMS,
	)
}
