package nats

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/piresc/dispatch/internal/pkg/logger"
)

const publishTimeout = 5 * time.Second

// Client wraps a NATS connection and its JetStream context
type Client struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// NewClient connects to url and ensures the given streams exist
func NewClient(url, name string, streams ...StreamConfig) (*Client, error) {
	if url == "" {
		return nil, fmt.Errorf("failed to connect to NATS server: empty url")
	}

	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", logger.Err(err))
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("NATS reconnected", logger.String("url", c.ConnectedUrl()))
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS server: %w", err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	client := &Client{conn: conn, js: js}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, stream := range streams {
		if err := client.EnsureStream(ctx, stream); err != nil {
			conn.Close()
			return nil, err
		}
	}

	return client, nil
}

// EnsureStream creates or updates a stream
func (c *Client) EnsureStream(ctx context.Context, config StreamConfig) error {
	if _, err := c.js.CreateOrUpdateStream(ctx, config.toJetStream()); err != nil {
		return fmt.Errorf("failed to create stream %s: %w", config.Name, err)
	}
	logger.Info("JetStream stream ready",
		logger.String("stream", config.Name),
		logger.Any("subjects", config.Subjects))
	return nil
}

// Publish stores a message on the stream that owns subject. It waits for
// the stream acknowledgement until ctx ends or publishTimeout elapses.
func (c *Client) Publish(ctx context.Context, subject string, data []byte) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	if _, err := c.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// Ping reports whether the connection and JetStream are usable
func (c *Client) Ping(ctx context.Context) error {
	if c.conn == nil || !c.conn.IsConnected() {
		return fmt.Errorf("NATS not connected")
	}
	if _, err := c.js.AccountInfo(ctx); err != nil {
		return fmt.Errorf("JetStream not available: %w", err)
	}
	return nil
}

// Close drains and closes the connection
func (c *Client) Close() {
	if c.conn != nil {
		if err := c.conn.Drain(); err != nil {
			c.conn.Close()
		}
	}
}
