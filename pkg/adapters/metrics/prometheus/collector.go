package prometheus

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records API metrics into its own Prometheus registry
type Collector struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	buildInfo       *prometheus.GaugeVec
	mem0Configured  prometheus.Gauge
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ocv_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"route", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ocv_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"route"},
		),
		buildInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ocv_build_info",
				Help: "Build information, always 1",
			},
			[]string{"version"},
		),
		mem0Configured: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ocv_mem0_configured",
				Help: "Whether a mem0 credential was configured at startup",
			},
		),
	}
}

// ObserveRequest records one served request
func (c *Collector) ObserveRequest(route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(route).Observe(duration.Seconds())
}

// RecordBuildInfo publishes the startup-time build and integration state
func (c *Collector) RecordBuildInfo(version string, mem0Configured bool) {
	c.buildInfo.WithLabelValues(version).Set(1)
	if mem0Configured {
		c.mem0Configured.Set(1)
	} else {
		c.mem0Configured.Set(0)
	}
}

// Registry returns the registry backing this collector
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler exposing the collector's metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
