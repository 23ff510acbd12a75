// Package broker publishes committed reservation events to RabbitMQ.
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/SalonBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const DefaultQueue = "reservation.events"

type Publisher struct {
	url    string
	queue  string
	logger logger.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewPublisher(url, queue string, log logger.Logger) *Publisher {
	if queue == "" {
		queue = DefaultQueue
	}
	return &Publisher{url: url, queue: queue, logger: log}
}

// ensureChannel dials on first use and again after the broker drops the connection.
func (p *Publisher) ensureChannel() error {
	if p.conn != nil && !p.conn.IsClosed() && p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}
	if _, err = ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *Publisher) Publish(ctx context.Context, e domain.ReservationEvent) error {
	msg, err := newMessage(e)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ensureChannel(); err != nil {
		return err
	}
	if err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", e.Type, err)
	}

	p.logger.Debug("reservation event published",
		logger.String("type", string(e.Type)),
		logger.String("reservation_id", e.ReservationID),
	)
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeLocked()
}

func (p *Publisher) closeLocked() error {
	var err error
	if p.channel != nil {
		if cerr := p.channel.Close(); cerr != nil && !p.channel.IsClosed() {
			err = cerr
		}
		p.channel = nil
	}
	if p.conn != nil {
		if cerr := p.conn.Close(); cerr != nil && err == nil && !p.conn.IsClosed() {
			err = cerr
		}
		p.conn = nil
	}
	return err
}

func newMessage(e domain.ReservationEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(e.Type),
		MessageId:    e.ReservationID + ":" + string(e.Type) + ":" + string(e.Status),
		Timestamp:    e.OccurredAt,
		Body:         body,
	}, nil
}

// NopPublisher drops events. Used when no broker URL is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.ReservationEvent) error { return nil }
