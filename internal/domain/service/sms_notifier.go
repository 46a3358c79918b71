package service

import "context"

// SMSNotifier sends best-effort text messages. Delivery failures are reported
// to the caller but never undo the operation that triggered them.
type SMSNotifier interface {
	// Send renders template with args and sends it to phone
	Send(ctx context.Context, phone, template string, args map[string]string) error
}
