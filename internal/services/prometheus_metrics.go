package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	alertEvaluations    *prometheus.CounterVec
	alertsFired         prometheus.Counter
	alertEvalDuration   prometheus.Histogram
	emailDispatches     *prometheus.CounterVec
	transactionsCreated *prometheus.CounterVec
	budgetsCreated      prometheus.Counter
	authEvents          *prometheus.CounterVec
	circuitBreakerState *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		alertEvaluations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_alert_evaluations_total",
				Help: "Total number of budget alert evaluations",
			},
			[]string{"outcome"},
		),
		alertsFired: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_alerts_fired_total",
				Help: "Total number of budget alerts that reached the threshold",
			},
		),
		alertEvalDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_alert_evaluation_duration_milliseconds",
				Help:    "Budget alert evaluation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		emailDispatches: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_emails_total",
				Help: "Total number of notification email dispatch attempts",
			},
			[]string{"status"},
		),
		transactionsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_created_total",
				Help: "Total number of transactions recorded",
			},
			[]string{"type"},
		),
		budgetsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budgets_created_total",
				Help: "Total number of budgets created",
			},
		),
		authEvents: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "alert.evaluated":
		outcome := tags["outcome"]
		if outcome == "" {
			outcome = "unknown"
		}
		m.alertEvaluations.WithLabelValues(outcome).Inc()
	case "alert.fired":
		m.alertsFired.Inc()
	case "notification.email":
		if status := tags["status"]; status != "" {
			m.emailDispatches.WithLabelValues(status).Inc()
		}
	case "transaction.created":
		if txType := tags["type"]; txType != "" {
			m.transactionsCreated.WithLabelValues(txType).Inc()
		}
	case "budget.created":
		m.budgetsCreated.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authEvents.WithLabelValues(eventType).Inc()
		}
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "alert.evaluation":
		m.alertEvalDuration.Observe(float64(duration.Milliseconds()))
	}
}
