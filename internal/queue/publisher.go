package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"staffhub_backend/internal/logger"
)

// Publisher sends domain events to an AMQP topic exchange. A nil
// Publisher is valid and drops every event, so callers never need to
// branch on whether the broker is configured.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher connects to the broker and declares the exchange.
// Returns nil (and logs) when url is empty or the broker is
// unreachable; event publishing is best-effort infrastructure.
func NewPublisher(url, exchange string) *Publisher {
	if url == "" {
		logger.Warn("queue publisher disabled: no broker URL configured")
		return nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		logger.Error("queue publisher disabled: broker dial failed", "error", err)
		return nil
	}

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("queue publisher disabled: channel open failed", "error", err)
		_ = conn.Close()
		return nil
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		logger.Error("queue publisher disabled: exchange declare failed", "error", err)
		_ = ch.Close()
		_ = conn.Close()
		return nil
	}

	return &Publisher{conn: conn, channel: ch, exchange: exchange}
}

// Publish marshals the event and sends it with the given routing key
// (e.g. "posting.filled"). Failures are logged, never propagated: the
// transaction that produced the event has already committed.
func (p *Publisher) Publish(ctx context.Context, routingKey string, event interface{}) {
	if p == nil {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.Error("queue: marshal event failed", "routing_key", routingKey, "error", err)
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, pub); err != nil {
		logger.Error("queue: publish failed", "routing_key", routingKey, "error", err)
	}
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	_ = p.channel.Close()
	_ = p.conn.Close()
}
