package constants

// NATS Subjects
const (
	// Outbound webhook tasks, consumed by the webhook worker
	SubjectWebhookOutbound = "webhook.outbound"
	// Tasks that exhausted their retries
	SubjectWebhookDeadLetter = "webhook.deadletter"
)
