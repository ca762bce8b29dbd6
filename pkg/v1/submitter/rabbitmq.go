package submitter

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockery --name RabbitMQPublisher --filename rabbitmqpublisher.go

// DefaultMaxMessageSize is default message size limit of RabbitMQ broker.
const DefaultMaxMessageSize = 128 << 20

// ErrMessageTooLarge is returned for messages the broker would refuse, e.g. emails with large attachments.
var ErrMessageTooLarge = errors.New("message exceeds size limit")

// RabbitMQPublisher is RabbitMQ messages publisher.
type RabbitMQPublisher interface {
	Publish(context.Context, string, []byte) error
}

// SenderOption is custom configuration of RabbitMQSender.
type SenderOption func(s *RabbitMQSender)

// RabbitMQSender publishes messages to single routing key.
type RabbitMQSender struct {
	publisher  RabbitMQPublisher
	routingKey string
	maxSize    int
}

// NewRabbitMQSender returns new RabbitMQSender publishing to routingKey.
func NewRabbitMQSender(publisher RabbitMQPublisher, routingKey string, ops ...SenderOption) RabbitMQSender {
	s := RabbitMQSender{
		publisher:  publisher,
		routingKey: routingKey,
		maxSize:    DefaultMaxMessageSize,
	}

	for _, op := range ops {
		op(&s)
	}

	return s
}

// NewRabbitMQSubmitter returns Submitter publishing emails and inventory commands with one publisher.
func NewRabbitMQSubmitter(publisher RabbitMQPublisher, emailsRoutingKey, inventoryRoutingKey string, ops ...SenderOption) Submitter {
	return NewSubmitter(
		NewRabbitMQSender(publisher, emailsRoutingKey, ops...),
		NewRabbitMQSender(publisher, inventoryRoutingKey, ops...),
	)
}

// Send publishes msg. Messages over size limit are rejected without publishing.
func (s RabbitMQSender) Send(ctx context.Context, msg []byte) error {
	if len(msg) > s.maxSize {
		return fmt.Errorf("%w: %d of %d bytes", ErrMessageTooLarge, len(msg), s.maxSize)
	}

	if err := s.publisher.Publish(ctx, s.routingKey, msg); err != nil {
		return fmt.Errorf("can't publish to %q: %w", s.routingKey, err)
	}

	return nil
}

// WithMaxMessageSize sets largest accepted message in bytes.
func WithMaxMessageSize(size int) SenderOption {
	return func(s *RabbitMQSender) {
		if size > 0 {
			s.maxSize = size
		}
	}
}
