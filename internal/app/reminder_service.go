// internal/app/reminder_service.go
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"birthday_reminder/internal/domain/notification"
	"birthday_reminder/internal/domain/record"

	"github.com/sirupsen/logrus"
)

// ReminderService defines the reminder checks run on each invocation.
type ReminderService interface {
	CheckBirthdays(ctx context.Context) (*CheckResult, error)
	CheckAnniversaries(ctx context.Context) (*CheckResult, error)
	CheckAll(ctx context.Context) ([]*CheckResult, error)
}

// PhotoLocator resolves a contact's image, if one exists.
type PhotoLocator interface {
	PhotoPath(name string) (string, bool)
}

// CheckResult summarizes one batch pass.
type CheckResult struct {
	Kind          notification.Kind
	Today         time.Time
	CountdownDays int
	Matched       []string
	Delivered     []string
	Failed        []string
}

// ReminderServiceImpl implements the ReminderService interface.
type ReminderServiceImpl struct {
	records record.Reader
	sender  notification.Sender
	photos  PhotoLocator // nil disables icons
	appName string
	now     func() time.Time
	logger  *logrus.Entry
}

func NewReminderServiceImpl(
	records record.Reader,
	sender notification.Sender,
	photos PhotoLocator,
	appName string,
	logger *logrus.Entry,
) *ReminderServiceImpl {
	return &ReminderServiceImpl{
		records: records,
		sender:  sender,
		photos:  photos,
		appName: appName,
		now:     time.Now,
		logger:  logger,
	}
}

// WithClock overrides the source of "today". Used by tests and the --today flag.
func (s *ReminderServiceImpl) WithClock(now func() time.Time) *ReminderServiceImpl {
	s.now = now
	return s
}

func (s *ReminderServiceImpl) CheckBirthdays(ctx context.Context) (*CheckResult, error) {
	return s.check(ctx, notification.KindBirthday, s.records.GetContacts)
}

func (s *ReminderServiceImpl) CheckAnniversaries(ctx context.Context) (*CheckResult, error) {
	return s.check(ctx, notification.KindAnniversary, s.records.GetAnniversaries)
}

// CheckAll runs both checks. A store failure in one does not skip the other.
func (s *ReminderServiceImpl) CheckAll(ctx context.Context) ([]*CheckResult, error) {
	var results []*CheckResult
	var errs []error
	for _, check := range []func(context.Context) (*CheckResult, error){s.CheckBirthdays, s.CheckAnniversaries} {
		res, err := check(ctx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func (s *ReminderServiceImpl) check(ctx context.Context, kind notification.Kind, load func(context.Context) (record.Dates, error)) (*CheckResult, error) {
	today := DateOnly(s.now())
	log := s.logger.WithFields(logrus.Fields{"kind": kind, "today": record.FormatDate(today)})

	// Everything is loaded before the first dispatch so a store failure sends nothing.
	settings, err := s.records.GetSettings(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read settings")
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	dates, err := load(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to read records")
		return nil, fmt.Errorf("failed to read %s records: %w", kind, err)
	}

	var matches []Match
	if settings.CountdownDays != 0 {
		matches = MatchCountdown(dates, today, settings.CountdownDays)
	} else {
		matches = exactMatches(dates, today)
	}
	log = log.WithField("countdown_days", settings.CountdownDays)
	log.Debugf("Found %d due records out of %d.", len(matches), len(dates))

	result := &CheckResult{Kind: kind, Today: today, CountdownDays: settings.CountdownDays}
	for _, m := range matches {
		result.Matched = append(result.Matched, m.Key)
		payload := s.buildPayload(kind, m, settings)

		if err := s.dispatch(ctx, payload); err != nil {
			log.WithError(err).WithField("key", m.Key).Warn("Notification not delivered")
			result.Failed = append(result.Failed, m.Key)
			continue
		}
		log.WithField("key", m.Key).Info("Notification sent")
		result.Delivered = append(result.Delivered, m.Key)
	}
	return result, nil
}

func (s *ReminderServiceImpl) buildPayload(kind notification.Kind, m Match, settings record.Settings) notification.Payload {
	payload := notification.Payload{
		ApplicationName: s.appName,
		Title:           titleFor(kind, m, settings.CountdownDays),
		Message:         messageFor(settings.CountdownDays),
	}
	if kind == notification.KindBirthday && settings.Photo && s.photos != nil {
		if path, ok := s.photos.PhotoPath(m.Key); ok {
			payload.IconPath = path
		}
	}
	return payload
}

// dispatch makes exactly one delivery attempt and never lets a sender failure escape,
// including a panic.
func (s *ReminderServiceImpl) dispatch(ctx context.Context, payload notification.Payload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: sender panicked: %v", notification.ErrDeliveryFailure, r)
		}
	}()
	if err := s.sender.Send(ctx, payload); err != nil {
		if errors.Is(err, notification.ErrDeliveryFailure) {
			return err
		}
		return fmt.Errorf("%w: %w", notification.ErrDeliveryFailure, err)
	}
	return nil
}
