// Package metric provides Prometheus counters for the shell.
package metric

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the shell's counters with their private registry.
type Metrics struct {
	registry *prometheus.Registry

	LinesRead      prometheus.Counter
	Dispatched     prometheus.Counter
	DispatchFaults prometheus.Counter
	ParseErrors    prometheus.Counter
	Completions    prometheus.Counter
}

// New creates and registers the shell counters on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LinesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalogue_shell_lines_total",
			Help: "Non-blank lines submitted to the controller loop.",
		}),
		Dispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalogue_shell_commands_dispatched_total",
			Help: "Commands resolved and dispatched.",
		}),
		DispatchFaults: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalogue_shell_dispatch_faults_total",
			Help: "Panics caught at the dispatch boundary.",
		}),
		ParseErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalogue_shell_parse_errors_total",
			Help: "Argument parse errors reported by commands.",
		}),
		Completions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalogue_shell_completions_total",
			Help: "Tab completion requests served.",
		}),
	}
	m.registry.MustRegister(m.LinesRead, m.Dispatched, m.DispatchFaults, m.ParseErrors, m.Completions)
	return m
}

// Snapshot gathers the current counter values keyed by metric name.
func (m *Metrics) Snapshot() (map[string]float64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, fmt.Errorf("gather metrics: %w", err)
	}
	out := make(map[string]float64, len(families))
	for _, mf := range families {
		for _, pm := range mf.GetMetric() {
			if c := pm.GetCounter(); c != nil {
				out[mf.GetName()] = c.GetValue()
			}
		}
	}
	return out, nil
}
