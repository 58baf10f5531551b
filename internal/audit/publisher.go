package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"admin-console-backend/internal/logger"
	"admin-console-backend/internal/observability"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Change actions carried in Event.Action
const (
	ActionCreated  = "created"
	ActionUpdated  = "updated"
	ActionDeleted  = "deleted"
	ActionLinked   = "linked"
	ActionUnlinked = "unlinked"
)

// Event describes a single change made through the console
type Event struct {
	Entity    string    `json:"entity"`
	Action    string    `json:"action"`
	ID        string    `json:"id"`
	At        time.Time `json:"at"`
	RequestID string    `json:"request_id,omitempty"`
}

//go:generate mockgen -source=publisher.go -destination=../mocks/audit_mocks.go -package=mocks

// Publisher publishes audit events.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// NewPublisher builds a RabbitMQ publisher or a noop publisher when AMQP is disabled.
func NewPublisher(amqpURL, exchange string) Publisher {
	if amqpURL == "" {
		logrus.Info("audit publishing disabled: empty amqp url")
		return NewNoopPublisher()
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		logrus.WithError(err).Warn("audit publishing disabled: dial failed")
		return NewNoopPublisher()
	}

	ch, err := conn.Channel()
	if err != nil {
		logrus.WithError(err).Warn("audit publishing disabled: channel failed")
		_ = conn.Close()
		return NewNoopPublisher()
	}

	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		logrus.WithError(err).Warn("audit publishing disabled: exchange declare failed")
		_ = ch.Close()
		_ = conn.Close()
		return NewNoopPublisher()
	}

	logrus.WithField("exchange", exchange).Info("audit publisher connected")
	return &amqpPublisher{conn: conn, ch: ch, exchange: exchange}
}

type amqpPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func (p *amqpPublisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now(),
		Body:         body,
	})
}

func (p *amqpPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		_ = p.conn.Close()
		return err
	}
	return p.conn.Close()
}

type noopPublisher struct{}

// NewNoopPublisher returns a publisher that drops every event
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, string, any) error { return nil }

func (noopPublisher) Close() error { return nil }

// Record publishes a change event under "<entity>.<action>". Failures are logged and
// counted; they never fail the caller's operation.
func Record(ctx context.Context, p Publisher, entity, action, id string) {
	if p == nil {
		return
	}

	event := Event{
		Entity:    entity,
		Action:    action,
		ID:        id,
		At:        time.Now().UTC(),
		RequestID: logger.RequestIDFromContext(ctx),
	}
	if err := p.Publish(ctx, fmt.Sprintf("%s.%s", entity, action), event); err != nil {
		observability.IncAuditPublishError()
		logger.WithContext(ctx).WithError(err).WithFields(map[string]interface{}{
			"entity": entity,
			"action": action,
			"id":     id,
		}).Warn("audit publish failed")
	}
}
