package telemetry

import "log/slog"

// Collector samples field statistics at the end of every stats window and
// routes them to slog and the output manager.
type Collector struct {
	windowTicks int32
	dt          float64
	logStats    bool
	out         *OutputManager
}

// NewCollector creates a collector. windowSec is the window length in
// simulated seconds; out may be nil (file output disabled).
func NewCollector(windowSec, dt float64, logStats bool, out *OutputManager) *Collector {
	windowTicks := int32(windowSec / dt)
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: windowTicks,
		dt:          dt,
		logStats:    logStats,
		out:         out,
	}
}

// EndStep is called after every completed simulation step. On window
// boundaries it computes and emits a stats record.
func (c *Collector) EndStep(tick int32, creatures []CreatureSample) {
	if tick%c.windowTicks != 0 {
		return
	}

	ws := computeWindowStats(tick, float64(tick)*c.dt, creatures)

	if c.logStats {
		ws.Log()
	}
	if c.out != nil {
		if err := c.out.AppendStats(&ws); err != nil {
			slog.Error("writing telemetry record", "error", err)
		}
	}
}
