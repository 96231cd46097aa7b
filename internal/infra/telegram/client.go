// internal/infra/telegram/client.go
package telegram

import (
	"context"
	"fmt"

	"birthday_reminder/internal/domain/notification"

	"gopkg.in/telebot.v3"
)

// messageSender is the part of *telebot.Bot the notifier needs.
type messageSender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// Notifier implements notification.Sender by posting to a single Telegram chat.
type Notifier struct {
	bot    messageSender
	chatID int64
}

// NewNotifier creates an offline bot: no getMe round trip and no polling,
// it only ever sends.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token, Offline: true})
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) Send(ctx context.Context, p notification.Payload) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	text := p.Title + "\n" + p.Message
	recipient := &telebot.Chat{ID: n.chatID}

	var what interface{} = text
	if p.HasIcon() {
		what = &telebot.Photo{File: telebot.FromDisk(p.IconPath), Caption: text}
	}
	if _, err := n.bot.Send(recipient, what); err != nil {
		return fmt.Errorf("%w: telegram chat %d: %w", notification.ErrDeliveryFailure, n.chatID, err)
	}
	return nil
}
