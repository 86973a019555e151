package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"gympulse/internal/logger"
	"gympulse/internal/metrics"
)

const QueueSubscriptionRenewed = "subscription.renewed"

type SubscriptionRenewed struct {
	UserID        int       `json:"user_id"`
	Months        int       `json:"months"`
	Amount        int64     `json:"amount"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	NewEndDate    time.Time `json:"new_end_date"`
	RenewedAt     time.Time `json:"renewed_at"`
}

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends domain events to durable RabbitMQ queues on the default
// exchange. A nil *Publisher drops every event.
type Publisher struct {
	mu   sync.Mutex
	conn *amqp.Connection
	ch   channel
}

func Dial(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	p, err := newPublisher(ch)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel) (*Publisher, error) {
	if _, err := ch.QueueDeclare(
		QueueSubscriptionRenewed,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return nil, err
	}
	return &Publisher{ch: ch}, nil
}

func (p *Publisher) PublishRenewal(ctx context.Context, ev SubscriptionRenewed) error {
	if p == nil {
		return nil
	}
	return p.publish(ctx, QueueSubscriptionRenewed, ev)
}

func (p *Publisher) publish(ctx context.Context, queue string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, "", queue, false, false, msg)
	p.mu.Unlock()

	if err != nil {
		metrics.RecordEvent(queue, "failed")
		logger.WithError(err).Warn("event publish failed", "queue", queue)
		return err
	}
	metrics.RecordEvent(queue, "success")
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	err := p.ch.Close()
	if p.conn != nil {
		if cerr := p.conn.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
