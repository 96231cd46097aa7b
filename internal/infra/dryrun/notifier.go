package dryrun

import (
	"context"

	"birthday_reminder/internal/domain/notification"

	"github.com/sirupsen/logrus"
)

// Notifier logs what would be sent without delivering anything.
type Notifier struct {
	logger *logrus.Entry
}

func NewNotifier(logger *logrus.Entry) *Notifier {
	return &Notifier{logger: logger}
}

func (n *Notifier) Send(_ context.Context, p notification.Payload) error {
	n.logger.WithFields(logrus.Fields{
		"app":     p.ApplicationName,
		"title":   p.Title,
		"message": p.Message,
		"icon":    p.IconPath,
	}).Info("Dry run notification")
	return nil
}
