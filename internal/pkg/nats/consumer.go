package nats

import (
	"context"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/dispatch/internal/pkg/logger"
)

// MessageHandler processes one message; an error NAKs it for redelivery
type MessageHandler func(ctx context.Context, data []byte) error

// Consumer pulls messages from a durable JetStream consumer
type Consumer struct {
	config     ConsumerConfig
	consumer   jetstream.Consumer
	consumeCtx jetstream.ConsumeContext
}

// NewConsumer creates or updates the durable consumer described by config
func NewConsumer(ctx context.Context, client *Client, config ConsumerConfig) (*Consumer, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}

	consumer, err := client.js.CreateOrUpdateConsumer(ctx, config.StreamName, config.toJetStream())
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer %s: %w", config.ConsumerName, err)
	}

	return &Consumer{config: config, consumer: consumer}, nil
}

// Start delivers messages to handler until Stop is called
func (c *Consumer) Start(handler MessageHandler) error {
	consumeCtx, err := c.consumer.Consume(func(msg jetstream.Msg) {
		handleMessage(msg, handler)
	})
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	c.consumeCtx = consumeCtx

	logger.Info("JetStream consumer started",
		logger.String("stream", c.config.StreamName),
		logger.String("consumer", c.config.ConsumerName))
	return nil
}

// acker is the part of jetstream.Msg the handler loop uses
type acker interface {
	Data() []byte
	Subject() string
	Ack() error
	Nak() error
}

func handleMessage(msg acker, handler MessageHandler) {
	if err := handler(context.Background(), msg.Data()); err != nil {
		logger.Warn("Message handling failed, requesting redelivery",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
		if nakErr := msg.Nak(); nakErr != nil {
			logger.Error("Failed to NAK message", logger.Err(nakErr))
		}
		return
	}
	if err := msg.Ack(); err != nil {
		logger.Error("Failed to ACK message",
			logger.String("subject", msg.Subject()),
			logger.Err(err))
	}
}

// Stop stops message delivery
func (c *Consumer) Stop() {
	if c.consumeCtx != nil {
		c.consumeCtx.Stop()
	}
}
