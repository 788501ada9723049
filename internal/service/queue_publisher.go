// Package service holds outbound integrations. The queue publisher pushes
// domain events to RabbitMQ; failures are logged by the caller and never
// interrupt the request that triggered them.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/rentflix/api/internal/queue"
)

// PublishRentalReturned publishes a RentalReturnedEvent to the
// rental.returned queue on the broker at url. The queue is declared durable
// on every publish (idempotent) and messages are marked persistent so they
// survive broker restarts.
func PublishRentalReturned(ctx context.Context, url string, ev queue.RentalReturnedEvent) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		queue.ReturnedQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",                      // default exchange
		queue.ReturnedQueueName, // routing key = queue name
		false,                   // mandatory
		false,                   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
}
