package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the procedure metrics and the registry they are served from.
type Metrics struct {
	registry *prometheus.Registry

	inFlight     prometheus.Gauge
	callsTotal   *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		callsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rpc_calls_total",
				Help: "Total number of procedure calls by result code.",
			},
			[]string{"procedure", "code"},
		),
		callDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rpc_call_duration_seconds",
				Help:    "Procedure call latencies in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"procedure"},
		),
	}

	m.registry.MustRegister(
		m.inFlight,
		m.callsTotal,
		m.callDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveCall records one finished procedure call.
func (m *Metrics) ObserveCall(procedure, code string, d time.Duration) {
	m.callsTotal.WithLabelValues(procedure, code).Inc()
	m.callDuration.WithLabelValues(procedure).Observe(d.Seconds())
}

// InFlight tracks requests currently being served.
func (m *Metrics) InFlight() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.inFlight.Inc()
		defer m.inFlight.Dec()
		c.Next()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
