package app

import (
	"fmt"

	"birthday_reminder/internal/domain/notification"
)

// CongratsMessage is the body of a notification sent on the day itself.
const CongratsMessage = "Say congrats"

func countdownMessage(days int) string {
	if days > 1 {
		return fmt.Sprintf("%d days remaining", days)
	}
	return fmt.Sprintf("%d day remaining", days)
}

func messageFor(countdownDays int) string {
	if countdownDays > 0 {
		return countdownMessage(countdownDays)
	}
	return CongratsMessage
}

func titleFor(kind notification.Kind, m Match, countdownDays int) string {
	switch kind {
	case notification.KindBirthday:
		return fmt.Sprintf("Birthday of %s", m.Key)
	case notification.KindAnniversary:
		if countdownDays == 0 && m.ElapsedYears > 0 {
			return fmt.Sprintf("%s No: %d", m.Key, m.ElapsedYears)
		}
		return m.Key
	default:
		return m.Key
	}
}
