package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	CacheLookupsTotal *prometheus.CounterVec
}

// New создает метрики и регистрирует их в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном registerer
func NewWithRegisterer(reg prometheus.Registerer, serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		UpstreamRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "lobeca_api_requests_total",
			Help:        "Total number of requests to the Lobeca API",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),
		UpstreamRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "lobeca_api_request_duration_seconds",
			Help:        "Lobeca API request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		CacheLookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "query_cache_lookups_total",
			Help:        "Query cache lookups by resource and result",
			ConstLabels: constLabels,
		}, []string{"resource", "result"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.UpstreamRequestsTotal,
		m.UpstreamRequestDuration,
		m.CacheLookupsTotal,
	)

	return m
}

// ObserveHTTP записывает входящий HTTP запрос
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveUpstream записывает запрос к Lobeca API
func (m *Metrics) ObserveUpstream(operation, status string, d time.Duration) {
	m.UpstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	m.UpstreamRequestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// ObserveCache записывает попадание или промах кэша
func (m *Metrics) ObserveCache(resource string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookupsTotal.WithLabelValues(resource, result).Inc()
}
