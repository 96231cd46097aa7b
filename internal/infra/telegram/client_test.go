package telegram

import (
	"context"
	"errors"
	"testing"

	"birthday_reminder/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v3"
)

type fakeBot struct {
	to   telebot.Recipient
	what interface{}
	err  error
}

func (f *fakeBot) Send(to telebot.Recipient, what interface{}, _ ...interface{}) (*telebot.Message, error) {
	f.to, f.what = to, what
	if f.err != nil {
		return nil, f.err
	}
	return &telebot.Message{}, nil
}

func TestNotifier_SendText(t *testing.T) {
	bot := &fakeBot{}
	n := &Notifier{bot: bot, chatID: 42}

	err := n.Send(context.Background(), notification.Payload{Title: "Birthday of Alice", Message: "Say congrats"})
	require.NoError(t, err)

	assert.Equal(t, "42", bot.to.Recipient())
	assert.Equal(t, "Birthday of Alice\nSay congrats", bot.what)
}

func TestNotifier_SendPhoto(t *testing.T) {
	bot := &fakeBot{}
	n := &Notifier{bot: bot, chatID: 42}

	err := n.Send(context.Background(), notification.Payload{Title: "Birthday of Alice", Message: "1 day remaining", IconPath: "/photos/alice.png"})
	require.NoError(t, err)

	photo, ok := bot.what.(*telebot.Photo)
	require.True(t, ok)
	assert.Equal(t, "Birthday of Alice\n1 day remaining", photo.Caption)
	assert.Equal(t, "/photos/alice.png", photo.File.FileLocal)
}

func TestNotifier_SendError(t *testing.T) {
	apiErr := errors.New("chat not found")
	n := &Notifier{bot: &fakeBot{err: apiErr}, chatID: 42}

	err := n.Send(context.Background(), notification.Payload{Title: "x"})
	assert.ErrorIs(t, err, notification.ErrDeliveryFailure)
	assert.ErrorIs(t, err, apiErr)
}

func TestNotifier_CanceledContext(t *testing.T) {
	bot := &fakeBot{}
	n := &Notifier{bot: bot, chatID: 42}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, n.Send(ctx, notification.Payload{Title: "x"}), context.Canceled)
	assert.Nil(t, bot.what)
}
