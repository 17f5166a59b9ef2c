package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/bounce/config"
)

// csvLog appends records to one CSV file, writing the header only once.
type csvLog struct {
	f             *os.File
	headerWritten bool
}

func openCSVLog(path string) (*csvLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &csvLog{f: f}, nil
}

func (l *csvLog) write(records any) error {
	if l.headerWritten {
		return gocsv.MarshalWithoutHeaders(records, l.f)
	}
	if err := gocsv.Marshal(records, l.f); err != nil {
		return err
	}
	l.headerWritten = true
	return nil
}

func (l *csvLog) Close() error {
	return l.f.Close()
}

// OutputManager handles experiment output: a config snapshot plus CSV logs
// of window stats and tick timing.
type OutputManager struct {
	dir       string
	telemetry *csvLog
	perf      *csvLog
}

// NewOutputManager creates the output directory and opens the CSV files.
// Returns nil if dir is empty (output disabled). All methods accept a nil
// receiver.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	telemetry, err := openCSVLog(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, err
	}
	perf, err := openCSVLog(filepath.Join(dir, "perf.csv"))
	if err != nil {
		telemetry.Close()
		return nil, err
	}

	return &OutputManager{dir: dir, telemetry: telemetry, perf: perf}, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTelemetry appends a window stats record to telemetry.csv.
func (om *OutputManager) WriteTelemetry(stats WindowStats) error {
	if om == nil {
		return nil
	}
	if err := om.telemetry.write([]WindowStats{stats}); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WritePerf appends a performance record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int64) error {
	if om == nil {
		return nil
	}
	if err := om.perf.write([]PerfStatsCSV{stats.ToCSV(windowEnd)}); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes all output files and returns the first error.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []io.Closer{om.telemetry, om.perf} {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
