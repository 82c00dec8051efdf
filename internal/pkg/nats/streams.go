package nats

import (
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/dispatch/internal/pkg/constants"
)

// Stream and consumer names
const (
	StreamWebhooks         = "WEBHOOKS"
	ConsumerWebhookWorkers = "webhook_workers"
)

// StreamConfig describes a JetStream stream
type StreamConfig struct {
	Name     string
	Subjects []string
	MaxAge   time.Duration
	MaxBytes int64
	Replicas int
}

func (s StreamConfig) toJetStream() jetstream.StreamConfig {
	replicas := s.Replicas
	if replicas <= 0 {
		replicas = 1
	}
	return jetstream.StreamConfig{
		Name:      s.Name,
		Subjects:  s.Subjects,
		Retention: jetstream.LimitsPolicy,
		Storage:   jetstream.FileStorage,
		Replicas:  replicas,
		MaxAge:    s.MaxAge,
		MaxBytes:  s.MaxBytes,
		Discard:   jetstream.DiscardOld,
	}
}

// ConsumerConfig describes a durable pull consumer
type ConsumerConfig struct {
	StreamName    string
	ConsumerName  string
	FilterSubject string
	AckWait       time.Duration
	MaxDeliver    int
	MaxAckPending int
}

func (c ConsumerConfig) toJetStream() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Durable:       c.ConsumerName,
		FilterSubject: c.FilterSubject,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       c.AckWait,
		MaxDeliver:    c.MaxDeliver,
		MaxAckPending: c.MaxAckPending,
		ReplayPolicy:  jetstream.ReplayInstantPolicy,
	}
}

// WebhookStream holds outbound tasks and dead letters for a week
func WebhookStream() StreamConfig {
	return StreamConfig{
		Name:     StreamWebhooks,
		Subjects: []string{constants.SubjectWebhookOutbound, constants.SubjectWebhookDeadLetter},
		MaxAge:   7 * 24 * time.Hour,
		MaxBytes: 512 * 1024 * 1024,
	}
}

// WebhookConsumer is shared by every worker replica. AckWait covers the
// whole in-process retry schedule of one task.
func WebhookConsumer(workers int) ConsumerConfig {
	if workers <= 0 {
		workers = 1
	}
	return ConsumerConfig{
		StreamName:    StreamWebhooks,
		ConsumerName:  ConsumerWebhookWorkers,
		FilterSubject: constants.SubjectWebhookOutbound,
		AckWait:       2 * time.Minute,
		MaxDeliver:    3,
		MaxAckPending: workers * 4,
	}
}
