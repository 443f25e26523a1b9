package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shaiso/Conveyor/internal/domain"
)

// EventType — тип события жизненного цикла.
type EventType string

// Типы событий.
const (
	EventRunStarted    EventType = "run.started"
	EventStepCompleted EventType = "step.completed"
	EventStepFailed    EventType = "step.failed"
	EventRunFinished   EventType = "run.finished"
)

// Publisher публикует события жизненного цикла в RabbitMQ.
type Publisher struct {
	conn   *Connection
	logger *slog.Logger
}

// NewPublisher создаёт новый Publisher.
func NewPublisher(conn *Connection, logger *slog.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: logger,
	}
}

// Event — сообщение о событии жизненного цикла.
type Event struct {
	// ID — уникальный идентификатор сообщения.
	ID string `json:"id"`

	// Type — тип события.
	Type EventType `json:"type"`

	// Payload — полезная нагрузка.
	Payload any `json:"payload"`

	// Timestamp — время создания.
	Timestamp time.Time `json:"timestamp"`
}

// RunPayload — payload событий run.started / run.finished.
type RunPayload struct {
	RunID    uuid.UUID        `json:"run_id"`
	Project  string           `json:"project"`
	RunGroup string           `json:"run_group"`
	Steps    []string         `json:"steps"`
	Status   domain.RunStatus `json:"status"`
	Error    string           `json:"error,omitempty"`
}

// StepPayload — payload событий step.completed / step.failed.
type StepPayload struct {
	RunID    uuid.UUID               `json:"run_id"`
	Step     string                  `json:"step"`
	Status   domain.StepStatus       `json:"status"`
	Error    string                  `json:"error,omitempty"`
	Produced []domain.ArtifactHandle `json:"produced,omitempty"`
}

// Publish публикует событие в обменник runs.
func (p *Publisher) Publish(ctx context.Context, routingKey RoutingKey, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		err := ch.PublishWithContext(
			ctx,
			string(ExchangeRuns), // exchange
			string(routingKey),   // routing key
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent, // сообщение переживёт рестарт RabbitMQ
				MessageId:    event.ID,
				Timestamp:    event.Timestamp,
				Body:         body,
			},
		)
		if err != nil {
			return fmt.Errorf("publish to %s/%s: %w", ExchangeRuns, routingKey, err)
		}

		p.logger.Debug("published event",
			"routing_key", routingKey,
			"message_id", event.ID,
			"type", event.Type,
		)

		return nil
	})
}

// PublishRunStarted публикует событие о начале run.
func (p *Publisher) PublishRunStarted(ctx context.Context, payload RunPayload) error {
	return p.publish(ctx, RoutingKeyRunStarted, EventRunStarted, payload)
}

// PublishRunFinished публикует событие о завершении run.
func (p *Publisher) PublishRunFinished(ctx context.Context, payload RunPayload) error {
	return p.publish(ctx, RoutingKeyRunFinished, EventRunFinished, payload)
}

// PublishStepCompleted публикует событие об успешном шаге.
func (p *Publisher) PublishStepCompleted(ctx context.Context, payload StepPayload) error {
	return p.publish(ctx, RoutingKeyStepCompleted, EventStepCompleted, payload)
}

// PublishStepFailed публикует событие об упавшем шаге.
func (p *Publisher) PublishStepFailed(ctx context.Context, payload StepPayload) error {
	return p.publish(ctx, RoutingKeyStepFailed, EventStepFailed, payload)
}

func (p *Publisher) publish(ctx context.Context, routingKey RoutingKey, eventType EventType, payload any) error {
	event := &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	return p.Publish(ctx, routingKey, event)
}
