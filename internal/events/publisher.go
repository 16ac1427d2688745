package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"hall-booking/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher pushes lifecycle events to RabbitMQ. Publishing is
// best-effort: failures are logged, never surfaced to the booking flow.
// Queues are declared durable and messages marked persistent.
type Publisher struct {
	cfg config.AMQPConfig

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewPublisher(cfg config.AMQPConfig) *Publisher {
	return &Publisher{cfg: cfg}
}

func (p *Publisher) ReservationCreated(ctx context.Context, event ReservationCreated) {
	p.publish(ctx, QueueReservationCreated, event)
}

func (p *Publisher) ReservationConfirmed(ctx context.Context, event ReservationConfirmed) {
	p.publish(ctx, QueueReservationConfirmed, event)
}

func (p *Publisher) publish(ctx context.Context, queue string, event any) {
	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal event", "queue", queue, "error", err.Error())
		return
	}

	ch, err := p.channel()
	if err != nil {
		slog.Warn("event dropped, broker unavailable", "queue", queue, "error", err.Error())
		return
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		slog.Warn("failed to declare queue", "queue", queue, "error", err.Error())
		p.reset()
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, p.cfg.Exchange, queue, false, false, pub); err != nil {
		slog.Warn("failed to publish event", "queue", queue, "error", err.Error())
		p.reset()
	}
}

func (p *Publisher) channel() (*amqp.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil && !p.conn.IsClosed() {
		return p.ch, nil
	}

	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	p.conn = conn
	p.ch = ch
	return ch, nil
}

func (p *Publisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *Publisher) Close() {
	p.reset()
}

// NopPublisher discards events; used in tests and when the broker is
// disabled.
type NopPublisher struct{}

func (NopPublisher) ReservationCreated(context.Context, ReservationCreated)     {}
func (NopPublisher) ReservationConfirmed(context.Context, ReservationConfirmed) {}
