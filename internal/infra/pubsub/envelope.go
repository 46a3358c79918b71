package pubsub

import (
	"encoding/json"

	"mutuals/internal/domain/service"

	"github.com/pkg/errors"
)

const smsSchemaVersion = "sms.v1"

// ErrIncompleteSMS is returned when a message lacks a recipient or a body.
var ErrIncompleteSMS = errors.New("sms message requires recipient and body")

// encodeSMS renders the gateway payload and the attributes subscribers filter on.
// The recipient only travels inside the payload, never as an attribute.
func encodeSMS(message *service.SMSMessage) ([]byte, map[string]string, error) {
	if message == nil || message.To == "" || message.Body == "" {
		return nil, nil, errors.WithStack(ErrIncompleteSMS)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	attributes := map[string]string{
		"schema": smsSchemaVersion,
		"reason": message.Reason,
	}
	if message.RequestID != "" {
		attributes["request_id"] = message.RequestID
	}

	return data, attributes, nil
}
