package submitter_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MichalMitros/frame-order-parser/pkg/v1/submitter"
	"github.com/MichalMitros/frame-order-parser/pkg/v1/submitter/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSubmitEmail(t *testing.T) {
	messageID := faker.UUIDHyphenated()

	tests := map[string]struct {
		email       submitter.InboundEmail
		senderError error
		wantErr     error
	}{
		"ok": {
			email: submitter.InboundEmail{MessageID: messageID, From: "orders@modernoptical.com", HTML: "<p>order</p>"},
		},
		"without message id": {
			email: submitter.InboundEmail{From: "orders@modernoptical.com", Text: "order"},
		},
		"sender error": {
			email:       submitter.InboundEmail{MessageID: messageID},
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var sent submitter.InboundEmail
			emails := mocks.NewSender(t)
			emails.On("Send", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					require.NoError(t, json.Unmarshal(args.Get(1).([]byte), &sent))
				}).
				Return(tt.senderError)

			sub := submitter.NewSubmitter(emails, mocks.NewSender(t))
			id, err := sub.SubmitEmail(context.TODO(), tt.email)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
			if tt.wantErr != nil {
				return
			}
			assert.Equal(t, id, sent.MessageID, "should send returned message id")
			if tt.email.MessageID != "" {
				assert.Equal(t, tt.email.MessageID, id, "should keep provided message id")
			} else {
				_, err := uuid.Parse(id)
				assert.NoError(t, err, "should generate message id")
			}
			assert.Equal(t, tt.email.From, sent.From)
		})
	}
}

func TestUnitInventoryCommands(t *testing.T) {
	tests := map[string]struct {
		send     func(s submitter.Submitter) error
		wantBody string
		wantErr  error
	}{
		"receive whole order": {
			send:     func(s submitter.Submitter) error { return s.ConfirmReceipt(context.TODO(), 12) },
			wantBody: `{"action":"receive","orderId":12}`,
		},
		"receive part of order": {
			send:     func(s submitter.Submitter) error { return s.ConfirmReceipt(context.TODO(), 12, 1, 2, 3) },
			wantBody: `{"action":"receive","orderId":12,"itemIds":[1,2,3]}`,
		},
		"sell": {
			send:     func(s submitter.Submitter) error { return s.MarkSold(context.TODO(), 4) },
			wantBody: `{"action":"sell","itemIds":[4]}`,
		},
		"archive": {
			send:     func(s submitter.Submitter) error { return s.Archive(context.TODO(), 5, 6) },
			wantBody: `{"action":"archive","itemIds":[5,6]}`,
		},
		"sell without items": {
			send:    func(s submitter.Submitter) error { return s.MarkSold(context.TODO()) },
			wantErr: submitter.ErrNoItems,
		},
		"archive without items": {
			send:    func(s submitter.Submitter) error { return s.Archive(context.TODO()) },
			wantErr: submitter.ErrNoItems,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			inventory := mocks.NewSender(t)
			if tt.wantBody != "" {
				inventory.On("Send", mock.Anything, []byte(tt.wantBody)).Return(nil).Once()
			}

			err := tt.send(submitter.NewSubmitter(mocks.NewSender(t), inventory))

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitInventoryCommandSenderError(t *testing.T) {
	inventory := mocks.NewSender(t)
	inventory.On("Send", mock.Anything, mock.Anything).Return(assert.AnError)

	err := submitter.NewSubmitter(mocks.NewSender(t), inventory).ConfirmReceipt(context.TODO(), 1)

	require.ErrorIs(t, err, assert.AnError)
}
