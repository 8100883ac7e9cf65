package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so several apps can coexist in one test binary.
type Metrics struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	apiInflight prometheus.Gauge

	seedRecords  *prometheus.CounterVec
	seedFailures *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "careerpath_api_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),
		apiLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "careerpath_api_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		apiInflight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "careerpath_api_inflight_requests",
				Help: "Number of HTTP requests currently being served",
			},
		),
		seedRecords: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "careerpath_seed_records_total",
				Help: "Records inserted by the startup seed, per source",
			},
			[]string{"source"},
		),
		seedFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "careerpath_seed_failures_total",
				Help: "Seed sources that could not be loaded",
			},
			[]string{"source"},
		),
	}
}

func (m *Metrics) ApiInflightInc() {
	if m == nil {
		return
	}
	m.apiInflight.Inc()
}

func (m *Metrics) ApiInflightDec() {
	if m == nil {
		return
	}
	m.apiInflight.Dec()
}

func (m *Metrics) ObserveAPI(method, route, status string, dur time.Duration) {
	if m == nil {
		return
	}
	m.apiRequests.WithLabelValues(method, route, status).Inc()
	m.apiLatency.WithLabelValues(method, route).Observe(dur.Seconds())
}

func (m *Metrics) ObserveSeed(source string, loaded int, failed bool) {
	if m == nil {
		return
	}
	m.seedRecords.WithLabelValues(source).Add(float64(loaded))
	if failed {
		m.seedFailures.WithLabelValues(source).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
