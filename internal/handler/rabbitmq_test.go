package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/MichalMitros/frame-order-parser/internal/handler"
	"github.com/MichalMitros/frame-order-parser/internal/handler/mocks"
	"github.com/MichalMitros/frame-order-parser/internal/platform"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models"
	"github.com/MichalMitros/frame-order-parser/internal/platform/models/modelstesting"
	"github.com/MichalMitros/frame-order-parser/internal/platform/rabbitmq"
	"github.com/MichalMitros/frame-order-parser/pkg/v1/submitter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	nopLog = zerolog.Nop()
	keys   = handler.RoutingKeys{Parsed: "orders.parsed", Review: "orders.review"}
)

func inboundMessage(t *testing.T) ([]byte, submitter.InboundEmail) {
	t.Helper()

	email := submitter.InboundEmail{
		MessageID: "msg-1",
		TenantID:  "tenant-1",
		AccountID: "account-1",
		From:      "orders@modernoptical.com",
		Subject:   "Order 778812",
		HTML:      "<p>order</p>",
		Attachments: []submitter.Attachment{
			{Filename: "order.pdf", ContentType: "application/pdf", Content: "JVBERi0="},
		},
	}
	msg, err := json.Marshal(email)
	require.NoError(t, err)

	return msg, email
}

func TestUnitHandleEmail(t *testing.T) {
	result := modelstesting.FakeResult(2)
	parsedBody, err := json.Marshal(&result)
	require.NoError(t, err)

	procErr := platform.Fail(platform.StageDetect, "can't detect vendor", platform.ErrNoVendorMatch)
	reviewBody, err := json.Marshal(submitter.Failure{MessageID: "msg-1", Stage: "detect", Reason: procErr.Error()})
	require.NoError(t, err)

	empty := models.Result{MessageID: "msg-1", Diagnostic: "order table not found"}
	emptyBody, err := json.Marshal(submitter.Failure{MessageID: "msg-1", Stage: "parse", Reason: "order table not found"})
	require.NoError(t, err)

	tests := map[string]struct {
		result       *models.Result
		processErr   error
		publishKey   string
		publishBody  []byte
		publishErr   error
		wantRelease  bool
		wantErr      error
		wantAnyError bool
	}{
		"parsed": {
			result:      &result,
			publishKey:  keys.Parsed,
			publishBody: parsedBody,
		},
		"email fatal error": {
			processErr:  procErr,
			publishKey:  keys.Review,
			publishBody: reviewBody,
		},
		"no items parsed": {
			result:      &empty,
			publishKey:  keys.Review,
			publishBody: emptyBody,
		},
		"already running": {
			processErr: fmt.Errorf("can't start processing: %w", platform.ErrAlreadyRunning),
		},
		"infrastructure error": {
			processErr:  assert.AnError,
			wantRelease: true,
			wantErr:     assert.AnError,
		},
		"publish error": {
			result:      &result,
			publishKey:  keys.Parsed,
			publishBody: parsedBody,
			publishErr:  assert.AnError,
			wantRelease: true,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			msg, inbound := inboundMessage(t)
			processor := mocks.NewProcessor(t)
			publisher := mocks.NewPublisher(t)
			deduper := mocks.NewDeduper(t)

			deduper.On("Claim", mock.Anything, inbound.MessageID).Return(true, nil).Once()
			processor.On("Process", mock.Anything, mock.MatchedBy(func(e models.Email) bool {
				return e.MessageID == inbound.MessageID && e.Sender == inbound.From && e.AccountID == inbound.AccountID &&
					len(e.Attachments) == 1 && e.Attachments[0].Content == "JVBERi0="
			})).Return(tt.result, tt.processErr).Once()
			if tt.publishKey != "" {
				publisher.On("Publish", mock.Anything, tt.publishKey, tt.publishBody).Return(tt.publishErr).Once()
			}
			if tt.wantRelease {
				deduper.On("Release", mock.Anything, inbound.MessageID).Return(nil).Once()
			}

			h := handler.NewHandler(processor, mocks.NewInventory(t), publisher, keys, &nopLog, handler.WithDeduper(deduper))
			err := h.HandleEmail(context.TODO(), msg)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitHandleEmailDuplicate(t *testing.T) {
	msg, inbound := inboundMessage(t)
	deduper := mocks.NewDeduper(t)
	deduper.On("Claim", mock.Anything, inbound.MessageID).Return(false, nil).Once()

	h := handler.NewHandler(mocks.NewProcessor(t), mocks.NewInventory(t), mocks.NewPublisher(t), keys, &nopLog, handler.WithDeduper(deduper))

	require.NoError(t, h.HandleEmail(context.TODO(), msg), "duplicate should be acknowledged")
}

func TestUnitHandleEmailDeduperError(t *testing.T) {
	msg, inbound := inboundMessage(t)
	result := modelstesting.FakeResult(1)

	deduper := mocks.NewDeduper(t)
	deduper.On("Claim", mock.Anything, inbound.MessageID).Return(false, assert.AnError).Once()
	processor := mocks.NewProcessor(t)
	processor.On("Process", mock.Anything, mock.Anything).Return(&result, nil).Once()
	publisher := mocks.NewPublisher(t)
	publisher.On("Publish", mock.Anything, keys.Parsed, mock.Anything).Return(nil).Once()

	h := handler.NewHandler(processor, mocks.NewInventory(t), publisher, keys, &nopLog, handler.WithDeduper(deduper))

	require.NoError(t, h.HandleEmail(context.TODO(), msg), "unavailable deduper should not block processing")
}

func TestUnitHandleEmailWithoutDeduper(t *testing.T) {
	msg, _ := inboundMessage(t)
	processor := mocks.NewProcessor(t)
	processor.On("Process", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	h := handler.NewHandler(processor, mocks.NewInventory(t), mocks.NewPublisher(t), keys, &nopLog)

	require.ErrorIs(t, h.HandleEmail(context.TODO(), msg), assert.AnError)
}

func TestUnitHandleEmailInvalidMessage(t *testing.T) {
	h := handler.NewHandler(mocks.NewProcessor(t), mocks.NewInventory(t), mocks.NewPublisher(t), keys, &nopLog)

	assert.Error(t, h.HandleEmail(context.TODO(), []byte("{not json")))
}

func TestUnitHandleInventory(t *testing.T) {
	tests := map[string]struct {
		cmd     submitter.InventoryCommand
		setup   func(inv *mocks.Inventory)
		wantErr error
	}{
		"receive whole order": {
			cmd: submitter.InventoryCommand{Action: submitter.ActionReceive, OrderID: 3},
			setup: func(inv *mocks.Inventory) {
				inv.On("ConfirmOrder", mock.Anything, 3).Return(int64(36), nil).Once()
			},
		},
		"receive part of order": {
			cmd: submitter.InventoryCommand{Action: submitter.ActionReceive, OrderID: 3, ItemIDs: []int{1, 2}},
			setup: func(inv *mocks.Inventory) {
				inv.On("ConfirmItems", mock.Anything, 3, []int{1, 2}).Return(int64(2), nil).Once()
			},
		},
		"receive error": {
			cmd: submitter.InventoryCommand{Action: submitter.ActionReceive, OrderID: 3},
			setup: func(inv *mocks.Inventory) {
				inv.On("ConfirmOrder", mock.Anything, 3).Return(int64(0), assert.AnError).Once()
			},
			wantErr: assert.AnError,
		},
		"sell skips invalid transitions": {
			cmd: submitter.InventoryCommand{Action: submitter.ActionSell, ItemIDs: []int{1, 2, 2}},
			setup: func(inv *mocks.Inventory) {
				inv.On("MarkSold", mock.Anything, 1).Return(platform.ErrInvalidTransition).Once()
				inv.On("MarkSold", mock.Anything, 2).Return(nil).Once()
			},
		},
		"archive error": {
			cmd: submitter.InventoryCommand{Action: submitter.ActionArchive, ItemIDs: []int{1, 2}},
			setup: func(inv *mocks.Inventory) {
				inv.On("Archive", mock.Anything, 1).Return(assert.AnError).Once()
				inv.On("Archive", mock.Anything, 2).Return(nil).Once()
			},
			wantErr: assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inventory := mocks.NewInventory(t)
			tt.setup(inventory)
			msg, err := json.Marshal(tt.cmd)
			require.NoError(t, err)

			h := handler.NewHandler(mocks.NewProcessor(t), inventory, mocks.NewPublisher(t), keys, &nopLog)
			err = h.HandleInventory(context.TODO(), msg)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitHandleInventoryUnknownAction(t *testing.T) {
	h := handler.NewHandler(mocks.NewProcessor(t), mocks.NewInventory(t), mocks.NewPublisher(t), keys, &nopLog)

	assert.Error(t, h.HandleInventory(context.TODO(), []byte(`{"action":"teleport"}`)))
}

func TestUnitStart(t *testing.T) {
	errs := make(chan error)
	consumer := mocks.NewConsumer(t)
	consumer.On("Consume", mock.Anything, "emails", mock.AnythingOfType("rabbitmq.HandlerFunc")).
		Return((<-chan error)(errs), nil).Once()

	h := handler.NewHandler(mocks.NewProcessor(t), mocks.NewInventory(t), mocks.NewPublisher(t), keys, &nopLog)

	require.NoError(t, h.Start(context.TODO(), consumer, "emails", rabbitmq.HandlerFunc(h.HandleEmail)))
	errs <- assert.AnError
	close(errs)

	failing := mocks.NewConsumer(t)
	failing.On("Consume", mock.Anything, "emails", mock.Anything).Return(nil, assert.AnError).Once()

	require.ErrorIs(t, h.Start(context.TODO(), failing, "emails", h.HandleEmail), assert.AnError)
}
