package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ocean_watch"

// Metrics - счетчики и гистограммы сервиса
type Metrics struct {
	ReportsSubmitted    *prometheus.CounterVec   // labels: hazard_type, severity
	GeolocationOutcomes *prometheus.CounterVec   // labels: outcome={success,error}
	EventsPublished     *prometheus.CounterVec   // labels: sink, outcome={success,error}
	WebhookDeliveries   *prometheus.CounterVec   // labels: outcome={delivered,failed,skipped}
	HTTPDuration        *prometheus.HistogramVec // labels: method, route, status
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_submitted_total",
			Help:      "Hazard reports accepted by hazard type and severity.",
		}, []string{"hazard_type", "severity"}),
		GeolocationOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geolocation_outcomes_total",
			Help:      "Results of client geolocation requests applied to report forms.",
		}, []string{"outcome"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_events_published_total",
			Help:      "Report events handed to each sink by outcome.",
		}, []string{"sink", "outcome"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Review webhook deliveries by final outcome.",
		}, []string{"outcome"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "route", "status"}),
	}
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.GeolocationOutcomes,
		m.EventsPublished,
		m.WebhookDeliveries,
		m.HTTPDuration,
	)
	return m
}

// NewMetricsForTesting создает метрики без регистрации, чтобы тесты
// не получали панику "already registered"
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

// GinMiddleware замеряет длительность запросов. Для неизвестных путей
// используется метка "unmatched", чтобы не раздувать кардинальность.
func (m *Metrics) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.HTTPDuration.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Observe(time.Since(start).Seconds())
	}
}
