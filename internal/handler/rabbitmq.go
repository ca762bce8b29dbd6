package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MichalMitros/frame-order-parser/internal/pipeline"
	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/platform/rabbitmq"
	"github.com/MichalMitros/frame-order-parser/pkg/v1/submitter"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name Processor --filename processor.go
//go:generate mockery --name Inventory --filename inventory.go
//go:generate mockery --name Deduper --filename deduper.go
//go:generate mockery --name Publisher --filename publisher.go
//go:generate mockery --name Consumer --filename consumer.go

// Processor processes vendor emails.
type Processor interface {
	Process(ctx context.Context, email models.Email) (*models.Result, error)
}

// Inventory moves inventory items through their lifecycle.
type Inventory interface {
	ConfirmItems(ctx context.Context, orderID int, itemIDs []int) (int64, error)
	ConfirmOrder(ctx context.Context, orderID int) (int64, error)
	MarkSold(ctx context.Context, itemID int) error
	Archive(ctx context.Context, itemID int) error
}

// Deduper claims message ids.
type Deduper interface {
	Claim(ctx context.Context, messageID string) (bool, error)
	Release(ctx context.Context, messageID string) error
}

// Publisher publishes messages to routing key.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message []byte) error
}

// Consumer consumes queue messages.
type Consumer interface {
	Consume(ctx context.Context, queue string, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RoutingKeys are routing keys of published outcomes.
type RoutingKeys struct {
	Parsed string
	Review string
}

// Option is custom configuration of RMQHandler.
type Option func(h *RMQHandler)

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	processor Processor
	inventory Inventory
	publisher Publisher
	keys      RoutingKeys
	deduper   Deduper
	logger    *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(
	processor Processor,
	inventory Inventory,
	publisher Publisher,
	keys RoutingKeys,
	logger *zerolog.Logger,
	ops ...Option,
) *RMQHandler {
	h := &RMQHandler{
		processor: processor,
		inventory: inventory,
		publisher: publisher,
		keys:      keys,
		logger:    logger,
	}

	for _, op := range ops {
		op(h)
	}

	return h
}

// Start starts consuming and handling messages of queue with handler function in background.
func (h *RMQHandler) Start(ctx context.Context, consumer Consumer, queue string, handle rabbitmq.HandlerFunc) error {
	errorsChan, err := consumer.Consume(ctx, queue, handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Str("queue", queue).
				Msg("can't handle message")
		}
	}()

	return nil
}

// HandleEmail processes inbound email message and publishes its outcome.
// Emails which can't be processed because of their content are published for review and acknowledged,
// infrastructure failures are returned.
func (h *RMQHandler) HandleEmail(ctx context.Context, message []byte) error {
	var inbound submitter.InboundEmail
	if err := json.Unmarshal(message, &inbound); err != nil {
		return fmt.Errorf("can't decode inbound email: %w", err)
	}

	logger := h.logger.With().Str("messageId", inbound.MessageID).Logger()

	if h.deduper != nil {
		claimed, err := h.deduper.Claim(ctx, inbound.MessageID)
		if err != nil {
			logger.Warn().Err(err).Msg("can't check duplicate, processing anyway")
		}
		if err == nil && !claimed {
			logger.Info().Msg("duplicate email skipped")
			return nil
		}
	}

	logger.Debug().Str("from", inbound.From).Msg("processing started")

	result, err := h.processor.Process(ctx, toEmail(inbound))
	switch {
	case pipeline.IsEmailFatal(err):
		var procErr *platform.ProcessingError
		_ = errors.As(err, &procErr)
		logger.Warn().Err(err).Str("stage", string(procErr.Stage)).Msg("email needs review")
		return h.publishOutcome(ctx, &logger, inbound.MessageID, h.keys.Review, submitter.Failure{
			MessageID: inbound.MessageID,
			Stage:     string(procErr.Stage),
			Reason:    procErr.Error(),
		})
	case errors.Is(err, platform.ErrAlreadyRunning):
		logger.Info().Msg("email is already being processed")
		return nil
	case err != nil:
		h.release(ctx, &logger, inbound.MessageID)
		return fmt.Errorf("processing failed: %w", err)
	}

	if len(result.Items) == 0 {
		logger.Warn().Str("diagnostic", result.Diagnostic).Msg("no items parsed, email needs review")
		return h.publishOutcome(ctx, &logger, inbound.MessageID, h.keys.Review, submitter.Failure{
			MessageID: inbound.MessageID,
			Stage:     string(platform.StageParse),
			Reason:    result.Diagnostic,
		})
	}

	logger.Debug().Int("items", len(result.Items)).Msg("processing finished")

	return h.publishOutcome(ctx, &logger, inbound.MessageID, h.keys.Parsed, result)
}

// HandleInventory applies inventory command.
func (h *RMQHandler) HandleInventory(ctx context.Context, message []byte) error {
	var cmd submitter.InventoryCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		return fmt.Errorf("can't decode inventory command: %w", err)
	}

	logger := h.logger.With().Str("action", string(cmd.Action)).Int("orderId", cmd.OrderID).Logger()

	switch cmd.Action {
	case submitter.ActionReceive:
		var (
			received int64
			err      error
		)
		if len(cmd.ItemIDs) == 0 {
			received, err = h.inventory.ConfirmOrder(ctx, cmd.OrderID)
		} else {
			received, err = h.inventory.ConfirmItems(ctx, cmd.OrderID, cmd.ItemIDs)
		}
		if err != nil {
			return fmt.Errorf("can't confirm receipt: %w", err)
		}
		logger.Info().Int64("received", received).Msg("frames received")
		return nil
	case submitter.ActionSell:
		return h.transition(ctx, &logger, cmd.ItemIDs, h.inventory.MarkSold)
	case submitter.ActionArchive:
		return h.transition(ctx, &logger, cmd.ItemIDs, h.inventory.Archive)
	default:
		return fmt.Errorf("unknown inventory action %q", cmd.Action)
	}
}

// transition applies move to every item. Items which can't move are logged and skipped.
func (h *RMQHandler) transition(
	ctx context.Context,
	logger *zerolog.Logger,
	itemIDs []int,
	move func(ctx context.Context, itemID int) error,
) error {
	var errs []error
	for _, id := range lo.Uniq(itemIDs) {
		err := move(ctx, id)
		if errors.Is(err, platform.ErrInvalidTransition) {
			logger.Warn().Err(err).Int("itemId", id).Msg("item skipped")
			continue
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// publishOutcome publishes outcome of email. Claim of email is released when outcome can't be published.
func (h *RMQHandler) publishOutcome(ctx context.Context, logger *zerolog.Logger, messageID, routingKey string, v any) error {
	if err := h.publish(ctx, routingKey, v); err != nil {
		h.release(ctx, logger, messageID)
		return err
	}
	return nil
}

func (h *RMQHandler) publish(ctx context.Context, routingKey string, v any) error {
	msg, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("can't marshal outcome: %w", err)
	}

	if err := h.publisher.Publish(ctx, routingKey, msg); err != nil {
		return fmt.Errorf("can't publish outcome: %w", err)
	}
	return nil
}

func (h *RMQHandler) release(ctx context.Context, logger *zerolog.Logger, messageID string) {
	if h.deduper == nil {
		return
	}
	if err := h.deduper.Release(ctx, messageID); err != nil {
		logger.Warn().Err(err).Msg("can't release message claim")
	}
}

func toEmail(inbound submitter.InboundEmail) models.Email {
	return models.Email{
		MessageID: inbound.MessageID,
		TenantID:  inbound.TenantID,
		AccountID: inbound.AccountID,
		Sender:    inbound.From,
		Subject:   inbound.Subject,
		HTML:      inbound.HTML,
		Text:      inbound.Text,
		Attachments: lo.Map(inbound.Attachments, func(a submitter.Attachment, _ int) models.Attachment {
			return models.Attachment{
				Filename:    a.Filename,
				ContentType: a.ContentType,
				Content:     a.Content,
			}
		}),
		ReceivedAt: inbound.ReceivedAt,
	}
}

// WithDeduper sets RMQHandler's Deduper. Without it every delivery is processed.
func WithDeduper(d Deduper) Option {
	return func(h *RMQHandler) {
		h.deduper = d
	}
}
