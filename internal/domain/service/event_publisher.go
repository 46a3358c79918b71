package service

import (
	"context"
)

// SMSReasonUnregisteredLike marks the invite sent when someone likes a phone number without a profile
const SMSReasonUnregisteredLike = "unregistered_like_invite"

// SMSMessage is an outbound text handed to the SMS gateway
type SMSMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	To        string `json:"to"`                   // E.164 recipient
	Body      string `json:"body"`
	Reason    string `json:"reason"` // e.g. "unregistered_like_invite"
}

// EventPublisher defines the interface for publishing messages to the SMS gateway queue
type EventPublisher interface {
	// PublishSMS enqueues a text message for delivery
	PublishSMS(ctx context.Context, message *SMSMessage) error

	// Close releases any resources held by the publisher
	Close() error
}
