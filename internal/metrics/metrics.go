// Package metrics holds the Prometheus collectors of the record store
// service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "derma_records"

// Deletion sources.
const (
	DeletionSourceAPI   = "api"
	DeletionSourcePurge = "purge"
)

// Metrics is safe for concurrent use. A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	recordsCreated    prometheus.Counter
	statusTransitions *prometheus.CounterVec
	recordsDeleted    *prometheus.CounterVec
	deletionRequests  prometheus.Counter
}

// New registers the collectors, together with the Go runtime and process
// collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		recordsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_created_total",
			Help:      "Analysis records created.",
		}),
		statusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "Cloud analysis status transitions by target status.",
		}, []string{"status"}),
		recordsDeleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_deleted_total",
			Help:      "Analysis records removed, by source.",
		}, []string{"source"}),
		deletionRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deletion_requests_total",
			Help:      "Deletion requests written to the ledger.",
		}),
	}
}

func (m *Metrics) RecordCreated() {
	if m == nil {
		return
	}
	m.recordsCreated.Inc()
}

func (m *Metrics) StatusChanged(status string) {
	if m == nil {
		return
	}
	m.statusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordDeleted(source string) {
	if m == nil {
		return
	}
	m.recordsDeleted.WithLabelValues(source).Inc()
}

func (m *Metrics) DeletionRequested() {
	if m == nil {
		return
	}
	m.deletionRequests.Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
