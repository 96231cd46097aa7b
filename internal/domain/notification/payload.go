// internal/domain/notification/payload.go
package notification

import (
	"context"
	"errors"
)

var ErrDeliveryFailure = errors.New("notification delivery failed")

// Payload is a single notification ready for delivery.
type Payload struct {
	ApplicationName string
	Title           string
	Message         string
	IconPath        string // empty when no icon is attached
}

func (p Payload) HasIcon() bool { return p.IconPath != "" }

// Sender delivers a payload. Implementations make a single attempt.
type Sender interface {
	Send(ctx context.Context, payload Payload) error
}
