package desktop

import (
	"context"
	"errors"
	"testing"

	"birthday_reminder/internal/domain/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_Send(t *testing.T) {
	var gotTitle, gotMessage, gotIcon string
	n := &Notifier{notify: func(title, message, icon string) error {
		gotTitle, gotMessage, gotIcon = title, message, icon
		return nil
	}}

	err := n.Send(context.Background(), notification.Payload{
		ApplicationName: "Birthday Reminder",
		Title:           "Birthday of Alice",
		Message:         "Say congrats",
		IconPath:        "/photos/alice.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "Birthday of Alice", gotTitle)
	assert.Equal(t, "Say congrats", gotMessage)
	assert.Equal(t, "/photos/alice.png", gotIcon)
}

func TestNotifier_SendError(t *testing.T) {
	dbusErr := errors.New("org.freedesktop.Notifications not provided")
	n := &Notifier{notify: func(string, string, string) error { return dbusErr }}

	err := n.Send(context.Background(), notification.Payload{Title: "x"})
	assert.ErrorIs(t, err, notification.ErrDeliveryFailure)
	assert.ErrorIs(t, err, dbusErr)
}
