package events

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Exchange — тип для имени обменника.
type Exchange string

// RoutingKey — тип для ключа маршрутизации.
type RoutingKey string

// ExchangeRuns — обменник событий жизненного цикла runs.
const ExchangeRuns Exchange = "conveyor.runs"

// Routing keys.
const (
	RoutingKeyRunStarted    RoutingKey = "run.started"
	RoutingKeyStepCompleted RoutingKey = "step.completed"
	RoutingKeyStepFailed    RoutingKey = "step.failed"
	RoutingKeyRunFinished   RoutingKey = "run.finished"
)

// SetupTopology объявляет обменник событий.
// Очереди объявляют потребители на своей стороне.
func SetupTopology(ctx context.Context, conn *Connection) error {
	return conn.WithChannel(ctx, func(ch *amqp.Channel) error {
		return ch.ExchangeDeclare(
			string(ExchangeRuns), // name
			"topic",              // type
			true,                 // durable
			false,                // auto-deleted
			false,                // internal
			false,                // no-wait
			nil,                  // arguments
		)
	})
}
