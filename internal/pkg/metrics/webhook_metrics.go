package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Webhook delivery outcomes
const (
	OutcomeDelivered  = "delivered"
	OutcomeFailed     = "failed"
	OutcomeDeadLetter = "dead_letter"
)

var (
	// WebhookDeliveries counts outbound deliveries by event and outcome
	WebhookDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_deliveries_total",
			Help: "Outbound webhook deliveries by final outcome",
		},
		[]string{"event", "outcome"},
	)

	// WebhookAttempts counts individual HTTP attempts by status class
	WebhookAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_attempts_total",
			Help: "Outbound webhook HTTP attempts by status category",
		},
		[]string{"category"},
	)

	// WebhookDuration records the latency of one delivery attempt
	WebhookDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "webhook_attempt_duration_seconds",
			Help:    "Duration of outbound webhook attempts in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// InboundWebhooks counts inbound webhook requests by source and result
	InboundWebhooks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inbound_webhooks_total",
			Help: "Inbound webhook requests by source, event and result",
		},
		[]string{"source", "event", "result"},
	)
)

// RecordWebhookAttempt records one outbound HTTP attempt. A zero status
// means the request never got a response.
func RecordWebhookAttempt(status int, seconds float64) {
	category := statusCategory(status)
	if category == "" {
		category = "transport_error"
	}
	WebhookAttempts.WithLabelValues(category).Inc()
	WebhookDuration.Observe(seconds)
}

// RecordWebhookOutcome records the final outcome of a delivery task
func RecordWebhookOutcome(event, outcome string) {
	WebhookDeliveries.WithLabelValues(event, outcome).Inc()
}

// RecordInbound records an inbound webhook request
func RecordInbound(source, event, result string) {
	InboundWebhooks.WithLabelValues(source, event, result).Inc()
}
