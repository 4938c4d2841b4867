package nats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrysvd/test-task/internal/config"
	"github.com/dmitrysvd/test-task/internal/core/port"

	"github.com/nats-io/nats.go"
)

// Publisher publishes replication events to a NATS subject. Publishing is
// fire-and-forget; delivery is best-effort.
type Publisher struct {
	logger  *slog.Logger
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to NATS and returns a Publisher.
func NewPublisher(cfg config.NATSConfig, logger *slog.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Name("file-api"),
		nats.ReconnectWait(2 * time.Second),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	}
	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &Publisher{
		conn:    conn,
		subject: cfg.Subject,
		logger:  logger,
	}, nil
}

var _ port.EventPublisher = (*Publisher)(nil)

// Publish sends data to the configured subject.
func (p *Publisher) Publish(ctx context.Context, data []byte) error {
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", p.subject, err)
	}
	return nil
}

// Close flushes and closes the connection.
func (p *Publisher) Close() error {
	if p.conn != nil {
		if err := p.conn.Flush(); err != nil {
			p.logger.Warn("failed to flush NATS connection", "error", err)
		}
		p.conn.Close()
	}
	return nil
}
