package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the document store.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	saveDuration    prometheus.Observer
	saveFailures    prometheus.Counter
	replacements    prometheus.Counter
}

// NewMetricsService registers core Prometheus collectors.
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
		Help:    "Duration of document persistence attempts",
		Buckets: prometheus.DefBuckets,
	})

	saveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "document_save_failures_total",
		Help: "Total failed document persistence attempts",
	})

	replacements := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "snapshot_replacements_total",
		Help: "Total snapshot replacements applied to the in-memory store",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, saveDuration, saveFailures, replacements, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		saveDuration:    saveDuration,
		saveFailures:    saveFailures,
		replacements:    replacements,
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

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveDocumentSave records one persistence attempt; implements the
// store's SaveObserver.
func (m *MetricsService) ObserveDocumentSave(duration time.Duration, failed bool) {
	if m == nil {
		return
	}
	m.replacements.Inc()
	m.saveDuration.Observe(duration.Seconds())
	if failed {
		m.saveFailures.Inc()
	}
}
