// Package metrics exports a run's outcome in the Prometheus text format, for
// node_exporter's textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/raoulx24/bak-rotate/internal/rotator"
)

const namespace = "bak_rotate"

type Metrics struct {
	registry     *prometheus.Registry
	scanned      *prometheus.GaugeVec
	rotated      *prometheus.GaugeVec
	failed       *prometheus.GaugeVec
	bytesRotated *prometheus.GaugeVec
	lastRun      *prometheus.GaugeVec
	duration     *prometheus.GaugeVec
	success      *prometheus.GaugeVec
}

func New() *Metrics {
	labels := []string{"directory", "criterion"}

	gauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, labels)
	}

	m := &Metrics{
		registry:     prometheus.NewRegistry(),
		scanned:      gauge("entries_scanned", "Entries examined by the last run."),
		rotated:      gauge("entries_rotated", "Entries moved into bak by the last run."),
		failed:       gauge("entries_failed", "Entries whose rotation failed in the last run."),
		bytesRotated: gauge("bytes_rotated", "Bytes moved into bak by the last run."),
		lastRun:      gauge("last_run_timestamp_seconds", "Unix time the last run started."),
		duration:     gauge("run_duration_seconds", "Wall time of the last run."),
		success:      gauge("last_run_success", "1 if the last run finished without failures."),
	}

	m.registry.MustRegister(
		m.scanned,
		m.rotated,
		m.failed,
		m.bytesRotated,
		m.lastRun,
		m.duration,
		m.success,
	)
	return m
}

// Observe records rep. runErr is the error Run returned alongside it.
func (m *Metrics) Observe(rep *rotator.Report, runErr error) {
	if rep == nil {
		return
	}

	l := prometheus.Labels{"directory": rep.Directory, "criterion": rep.Criterion}

	m.scanned.With(l).Set(float64(rep.Summary.Scanned))
	m.rotated.With(l).Set(float64(rep.Summary.Rotated))
	m.failed.With(l).Set(float64(rep.Summary.Failed))
	m.bytesRotated.With(l).Set(float64(rep.Summary.BytesRotated))
	m.lastRun.With(l).Set(float64(rep.StartedAt.Unix()))
	m.duration.With(l).Set(rep.Duration().Seconds())

	if runErr == nil {
		m.success.With(l).Set(1)
	} else {
		m.success.With(l).Set(0)
	}
}

// WriteFile writes the registry to path. The file is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("writing metrics file: %w", err)
	}
	return nil
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
