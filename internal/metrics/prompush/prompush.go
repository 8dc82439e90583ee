// Package prompush implements a Prometheus Pushgateway backend for the
// metrics package. A conversion is a one-shot batch job, so metrics are
// pushed at the end of the run rather than exposed on a scrape endpoint.
//
// All Prometheus-specific dependencies live here; the rest of the project
// depends only on metrics.Backend.
package prompush

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/veryxcit/freepbx2ucm/internal/metrics"
)

// Backend is a Prometheus Pushgateway metrics backend.
type Backend struct {
	reg    *prometheus.Registry
	pusher *push.Pusher

	rows        *prometheus.CounterVec // freepbx2ucm_rows_total
	runs        *prometheus.CounterVec // freepbx2ucm_runs_total
	runDuration *prometheus.SummaryVec // freepbx2ucm_run_duration_seconds
}

// NewBackend constructs a Pushgateway backend. jobName is the Pushgateway
// "job" grouping; gatewayURL is the base URL of the Pushgateway server.
func NewBackend(jobName, gatewayURL string) (*Backend, error) {
	if gatewayURL == "" {
		return nil, fmt.Errorf("prompush: gateway URL is required")
	}
	if jobName == "" {
		jobName = "freepbx2ucm"
	}

	reg := prometheus.NewRegistry()

	rows := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metrics.RowsTotal,
			Help: "Input rows classified, partitioned by job, status, and rejection reason.",
		},
		[]string{"job", "status", "reason"},
	)
	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: metrics.RunsTotal,
			Help: "Conversion runs, partitioned by job and outcome.",
		},
		[]string{"job", "status"},
	)
	runDuration := prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name: metrics.RunDurationSeconds,
			Help: "Wall-clock duration of conversion runs in seconds.",
		},
		[]string{"job", "status"},
	)

	reg.MustRegister(rows, runs, runDuration)

	return &Backend{
		reg:         reg,
		pusher:      push.New(gatewayURL, jobName).Gatherer(reg),
		rows:        rows,
		runs:        runs,
		runDuration: runDuration,
	}, nil
}

// IncCounter implements metrics.Backend.
func (b *Backend) IncCounter(name string, delta float64, labels metrics.Labels) {
	switch name {
	case metrics.RowsTotal:
		b.rows.WithLabelValues(labels["job"], labels["status"], labels["reason"]).Add(delta)
	case metrics.RunsTotal:
		b.runs.WithLabelValues(labels["job"], labels["status"]).Add(delta)
	}
}

// ObserveHistogram implements metrics.Backend.
func (b *Backend) ObserveHistogram(name string, value float64, labels metrics.Labels) {
	if name == metrics.RunDurationSeconds {
		b.runDuration.WithLabelValues(labels["job"], labels["status"]).Observe(value)
	}
}

// Flush pushes the collected metrics to the Pushgateway.
func (b *Backend) Flush() error {
	if err := b.pusher.Push(); err != nil {
		return fmt.Errorf("prompush: push: %w", err)
	}
	return nil
}
