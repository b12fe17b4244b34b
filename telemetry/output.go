package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"

	"github.com/calder-hay/plenia/config"
)

// PerfRecord is one row of per-step timing output.
type PerfRecord struct {
	Tick        int32   `csv:"tick"`
	SolveUs     float64 `csv:"solve_us"`
	IntegrateUs float64 `csv:"integrate_us"`
	TotalUs     float64 `csv:"total_us"`
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	perfFile      *os.File

	telemetryHeaderWritten bool
	perfHeaderWritten      bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil
// if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	om.telemetryFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.telemetryFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteConfig saves the effective configuration as YAML alongside the CSV
// output, so a run's results stay reproducible.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	path := filepath.Join(om.dir, "config.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}
	return nil
}

// AppendStats writes one stats record to telemetry.csv.
func (om *OutputManager) AppendStats(ws *WindowStats) error {
	records := []*WindowStats{ws}
	if !om.telemetryHeaderWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return err
		}
		om.telemetryHeaderWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, om.telemetryFile)
}

// AppendPerf writes one timing record to perf.csv.
func (om *OutputManager) AppendPerf(pr *PerfRecord) error {
	records := []*PerfRecord{pr}
	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return err
		}
		om.perfHeaderWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, om.perfFile)
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	var firstErr error
	if err := om.telemetryFile.Close(); err != nil {
		firstErr = err
	}
	if err := om.perfFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
