package logger

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "sinklog"

// metrics groups the counters of one Logger.
type metrics struct {
	Lines       *prometheus.CounterVec
	WriteErrors prometheus.Counter
}

func newMetrics() metrics {
	return metrics{
		Lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "lines_total",
			Help:      "Number of lines dispatched, by level.",
		}, []string{"level"}),
		WriteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "sink_write_errors_total",
			Help:      "Number of failed sink writes.",
		}),
	}
}

// Metrics returns the collectors of l for registration with a prometheus
// registry. A re-initialised Logger has fresh collectors.
func (l *Logger) Metrics() []prometheus.Collector {
	return []prometheus.Collector{l.metrics.Lines, l.metrics.WriteErrors}
}
