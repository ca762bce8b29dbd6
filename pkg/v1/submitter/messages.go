package submitter

import "time"

// InboundEmail is vendor order confirmation email submitted for processing.
type InboundEmail struct {
	MessageID   string       `json:"messageId"`
	TenantID    string       `json:"tenantId"`
	AccountID   string       `json:"accountId"`
	From        string       `json:"from"`
	Subject     string       `json:"subject"`
	HTML        string       `json:"html,omitempty"`
	Text        string       `json:"text,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	ReceivedAt  time.Time    `json:"receivedAt"`
}

// Attachment is email attachment with base64 encoded content.
type Attachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Action is inventory lifecycle action.
type Action string

const (
	// ActionReceive confirms frames of order arrived. Without item ids the whole order is received.
	ActionReceive Action = "receive"
	ActionSell    Action = "sell"
	ActionArchive Action = "archive"
)

// InventoryCommand moves inventory items of order through their lifecycle.
type InventoryCommand struct {
	Action  Action `json:"action"`
	OrderID int    `json:"orderId,omitempty"`
	ItemIDs []int  `json:"itemIds,omitempty"`
}

// Failure is published for emails which need manual review.
type Failure struct {
	MessageID string `json:"messageId"`
	Stage     string `json:"stage"`
	Reason    string `json:"reason"`
}
