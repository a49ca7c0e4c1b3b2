package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ticketing"

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry     *prometheus.Registry
	operations   *prometheus.CounterVec
	compilations *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "redemption",
			Name:      "operations_total",
			Help:      "Ticket validation operations by operation and result.",
		}, []string{"operation", "result"}),
		compilations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sale",
			Name:      "compilations_total",
			Help:      "Sale parameter compilations by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		m.operations,
		m.compilations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe counts one redemption state machine operation.
func (m *Metrics) Observe(operation, result string) {
	m.operations.WithLabelValues(operation, result).Inc()
}

func (m *Metrics) ObserveCompile(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.compilations.WithLabelValues(result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
