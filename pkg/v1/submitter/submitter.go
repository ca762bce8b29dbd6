// Package submitter is client library for submitting emails and inventory commands to frame order parser.
package submitter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockery --name Sender --filename sender.go

// ErrNoItems is returned when inventory command needs item ids and none were provided.
var ErrNoItems = errors.New("no inventory items provided")

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// Submitter sends emails and inventory commands.
type Submitter struct {
	emails    Sender
	inventory Sender
}

// NewSubmitter returns new Submitter sending emails with emails sender and inventory commands with inventory sender.
func NewSubmitter(emails, inventory Sender) Submitter {
	return Submitter{
		emails:    emails,
		inventory: inventory,
	}
}

// SubmitEmail sends email for processing. Email without message id gets a new one.
// Returns message id of sent email.
func (s Submitter) SubmitEmail(ctx context.Context, email InboundEmail) (string, error) {
	if email.MessageID == "" {
		email.MessageID = uuid.NewString()
	}

	msg, err := json.Marshal(email)
	if err != nil {
		return "", fmt.Errorf("can't marshal email: %w", err)
	}

	if err := s.emails.Send(ctx, msg); err != nil {
		return "", fmt.Errorf("can't submit email: %w", err)
	}

	return email.MessageID, nil
}

// ConfirmReceipt confirms provided items of order arrived. Without item ids every frame of order is confirmed.
func (s Submitter) ConfirmReceipt(ctx context.Context, orderID int, itemIDs ...int) error {
	return s.send(ctx, InventoryCommand{Action: ActionReceive, OrderID: orderID, ItemIDs: itemIDs})
}

// MarkSold marks current items as sold.
func (s Submitter) MarkSold(ctx context.Context, itemIDs ...int) error {
	if len(itemIDs) == 0 {
		return ErrNoItems
	}
	return s.send(ctx, InventoryCommand{Action: ActionSell, ItemIDs: itemIDs})
}

// Archive archives items.
func (s Submitter) Archive(ctx context.Context, itemIDs ...int) error {
	if len(itemIDs) == 0 {
		return ErrNoItems
	}
	return s.send(ctx, InventoryCommand{Action: ActionArchive, ItemIDs: itemIDs})
}

func (s Submitter) send(ctx context.Context, cmd InventoryCommand) error {
	msg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal inventory command: %w", err)
	}

	return s.inventory.Send(ctx, msg)
}
