// Package desktop delivers reminders as native desktop notifications.
package desktop

import (
	"context"
	"fmt"

	"birthday_reminder/internal/domain/notification"

	"github.com/gen2brain/beeep"
)

// Notifier implements notification.Sender with beeep.
type Notifier struct {
	notify func(title, message, icon string) error
}

func NewNotifier(appName string) *Notifier {
	beeep.AppName = appName
	return &Notifier{
		notify: func(title, message, icon string) error {
			return beeep.Notify(title, message, icon)
		},
	}
}

func (n *Notifier) Send(ctx context.Context, p notification.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.notify(p.Title, p.Message, p.IconPath); err != nil {
		return fmt.Errorf("%w: desktop: %w", notification.ErrDeliveryFailure, err)
	}
	return nil
}
