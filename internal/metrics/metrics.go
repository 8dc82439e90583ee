// Package metrics provides a small, backend-agnostic abstraction for
// recording operational metrics from conversion runs.
//
// The package exposes a narrow Backend interface and a global, pluggable
// backend that defaults to a no-op implementation, so metric calls are always
// safe even when no real backend is configured. Concrete systems (Prometheus
// Pushgateway) live in subpackages and are selected by the CLI.
package metrics

import "time"

// Labels are string key/value pairs attached to a metric.
type Labels map[string]string

// Backend is the minimal interface for metrics backends.
type Backend interface {
	// IncCounter increments a counter by delta.
	IncCounter(name string, delta float64, labels Labels)
	// ObserveHistogram records a value in a duration-style metric.
	ObserveHistogram(name string, value float64, labels Labels)
	// Flush pushes or flushes metrics, if the backend needs it.
	Flush() error
}

// nopBackend is used by default so metrics are optional.
type nopBackend struct{}

func (nopBackend) IncCounter(name string, delta float64, labels Labels)       {}
func (nopBackend) ObserveHistogram(name string, value float64, labels Labels) {}
func (nopBackend) Flush() error                                               { return nil }

var backend Backend = nopBackend{}

// SetBackend installs a concrete backend. Passing nil keeps the existing one.
func SetBackend(b Backend) {
	if b == nil {
		return
	}
	backend = b
}

// Flush delegates to the current backend.
func Flush() error {
	return backend.Flush()
}

// Metric names shared with backends.
const (
	RowsTotal          = "freepbx2ucm_rows_total"
	RunsTotal          = "freepbx2ucm_runs_total"
	RunDurationSeconds = "freepbx2ucm_run_duration_seconds"
)

// RecordRow counts one classified input row. status is "accepted" or
// "rejected"; reason is empty for accepted rows.
func RecordRow(job, status, reason string) {
	backend.IncCounter(RowsTotal, 1, Labels{
		"job":    job,
		"status": status,
		"reason": reason,
	})
}

// RecordRun records the outcome and duration of one whole run.
func RecordRun(job string, err error, d time.Duration) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	backend.IncCounter(RunsTotal, 1, Labels{"job": job, "status": status})
	backend.ObserveHistogram(RunDurationSeconds, d.Seconds(), Labels{"job": job, "status": status})
}
