package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// HandlerFunc is function which handles messages.
type HandlerFunc func(ctx context.Context, message []byte) error

// RabbitMQ consumes and publishes amqp messages.
type RabbitMQ struct {
	channel   *amqp.Channel
	exchange  string
	isRunning chan struct{}
}

// NewRabbitMQ returns new RabbitMQ. Every consumer gets one unacknowledged message at a time,
// emails are processed one after another.
func NewRabbitMQ(connection *amqp.Connection, exchange string) (*RabbitMQ, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("can't open channel: %w", err)
	}

	if err := channel.Qos(1, 0, false); err != nil {
		return nil, fmt.Errorf("can't set channel prefetch: %w", err)
	}

	mq := RabbitMQ{
		channel:  channel,
		exchange: exchange,
	}

	return &mq, nil
}

// Declare declares durable topic exchange and durable queue bound to it with routing keys.
func (mq *RabbitMQ) Declare(queue string, routingKeys ...string) error {
	err := mq.channel.ExchangeDeclare(mq.exchange, amqp.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("can't declare exchange %q: %w", mq.exchange, err)
	}

	if _, err := mq.channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("can't declare queue %q: %w", queue, err)
	}

	for _, key := range routingKeys {
		if err := mq.channel.QueueBind(queue, key, mq.exchange, false, nil); err != nil {
			return fmt.Errorf("can't bind queue %q to %q: %w", queue, key, err)
		}
	}

	return nil
}

// Publish publishes persistent message to routing key.
func (mq *RabbitMQ) Publish(ctx context.Context, routingKey string, message []byte) error {
	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    time.Now().UTC(),
		Body:         message,
	}

	err := mq.channel.PublishWithContext(
		ctx,
		mq.exchange,
		routingKey,
		false,
		false,
		msg,
	)
	if err != nil {
		return fmt.Errorf("can't publish message to %q: %w", routingKey, err)
	}

	return nil
}

// Consume consumes messages from queue and passes deliveries to provided handler function.
// It returns channel with errors from handler function and consuming process.
// Messages handled with error are rejected without requeue.
// Function works asynchronously, it consumes messages in background as long as context is not closed.
func (mq *RabbitMQ) Consume(ctx context.Context, queue string, handler HandlerFunc) (<-chan error, error) {
	consumerID, err := uuid.NewUUID()
	if err != nil {
		return nil, fmt.Errorf("can't create consumer ID: %w", err)
	}

	deliveries, err := mq.channel.Consume(
		queue,
		consumerID.String(),
		false, // auto acknowledge
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("can't start consuming %q: %w", queue, err)
	}

	consumingErrors := make(chan error)
	mq.isRunning = make(chan struct{})
	go func() {
		defer close(mq.isRunning)
		defer close(consumingErrors)
		mq.consumeMessages(ctx, deliveries, consumingErrors, handler)
	}()

	return consumingErrors, nil
}

func (mq *RabbitMQ) consumeMessages(
	ctx context.Context,
	deliveries <-chan amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				return
			}
			if err := mq.handle(ctx, &delivery, consumingErrors, handler); err != nil {
				return
			}
		}
	}
}

func (mq *RabbitMQ) handle(
	ctx context.Context,
	delivery *amqp.Delivery,
	consumingErrors chan error,
	handler HandlerFunc,
) error {
	if err := handler(ctx, delivery.Body); err != nil {
		_ = pushError(ctx, err, consumingErrors)
		if err := delivery.Nack(false, false); err != nil {
			return pushError(ctx, fmt.Errorf("can't nack message: %w", err), consumingErrors)
		}
		return nil
	}

	if err := delivery.Ack(false); err != nil {
		return pushError(ctx, fmt.Errorf("can't ack message: %w", err), consumingErrors)
	}
	return nil
}

// Done returns channel which will be closed when consuming will be finished.
func (mq *RabbitMQ) Done() chan struct{} {
	return mq.isRunning
}

// Close closes channel.
func (mq *RabbitMQ) Close() error {
	return mq.channel.Close()
}

func pushError(ctx context.Context, err error, errChan chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case errChan <- err:
	}
	return nil
}
