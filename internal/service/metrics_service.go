package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the ledger:
// HTTP traffic, document persistence and seeding.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	saveDuration    prometheus.Histogram
	saveTotal       prometheus.Counter
	documentBytes   prometheus.Gauge
	mutationTotal   *prometheus.CounterVec
	seedTotal       prometheus.Counter
}

// NewMetricsService registers the ledger collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	saveDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "document_save_duration_seconds",
		Help:    "Duration of whole-document persistence writes",
		Buckets: prometheus.DefBuckets,
	})

	saveTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "document_saves_total",
		Help: "Total whole-document persistence writes",
	})

	documentBytes := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "document_size_bytes",
		Help: "Serialized size of the last persisted document",
	})

	mutationTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_mutations_total",
		Help: "Total ledger mutations by entity",
	}, []string{"entity"})

	seedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_seed_runs_total",
		Help: "Times the example ledger was seeded",
	})

	registry.MustRegister(requestDuration, requestTotal, saveDuration, saveTotal, documentBytes, mutationTotal, seedTotal)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		saveDuration:    saveDuration,
		saveTotal:       saveTotal,
		documentBytes:   documentBytes,
		mutationTotal:   mutationTotal,
		seedTotal:       seedTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Middleware records request count and latency per route.
func (m *MetricsService) Middleware() gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := fmt.Sprintf("%d", c.Writer.Status())
		m.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}

// ObserveSave records one whole-document write.
func (m *MetricsService) ObserveSave(sizeBytes int, duration time.Duration) {
	if m == nil {
		return
	}
	m.saveTotal.Inc()
	m.saveDuration.Observe(duration.Seconds())
	m.documentBytes.Set(float64(sizeBytes))
}

// RecordMutation counts one completed mutation for the entity.
func (m *MetricsService) RecordMutation(entity string) {
	if m == nil {
		return
	}
	m.mutationTotal.WithLabelValues(entity).Inc()
}

// RecordSeed counts one seeding run.
func (m *MetricsService) RecordSeed() {
	if m == nil {
		return
	}
	m.seedTotal.Inc()
}
