package scheduler

import (
	"context"
	"fmt"
	"time"

	"birthday_reminder/internal/app" // For ReminderService interface

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const checkTimeout = 1 * time.Minute

type ReminderScheduler struct {
	cronEngine *cron.Cron
	reminders  app.ReminderService
	logger     *logrus.Entry
	cronSpec   string
}

func NewReminderScheduler(
	reminders app.ReminderService,
	logger *logrus.Entry,
	cronSpec string, // e.g., "0 9 * * *" (9 AM daily)
) *ReminderScheduler {
	cronLogger := cron.PrintfLogger(logger)
	return &ReminderScheduler{
		cronEngine: cron.New(
			cron.WithLocation(time.Local), // Reminders follow the user's wall clock
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		reminders: reminders,
		logger:    logger,
		cronSpec:  cronSpec,
	}
}

func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	if _, err := s.cronEngine.AddFunc(s.cronSpec, s.RunChecks); err != nil {
		return fmt.Errorf("could not add reminder cron job %q: %w", s.cronSpec, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("cron_spec", s.cronSpec).Info("Reminder scheduler started.")
	return nil
}

// RunChecks performs one pass over birthdays and anniversaries.
func (s *ReminderScheduler) RunChecks() {
	s.logger.Info("Cron job triggered for reminder checks.")
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	results, err := s.reminders.CheckAll(ctx)
	for _, res := range results {
		s.logger.WithFields(logrus.Fields{
			"kind":      res.Kind,
			"matched":   len(res.Matched),
			"delivered": len(res.Delivered),
			"failed":    len(res.Failed),
		}).Info("Reminder check finished.")
	}
	if err != nil {
		// The store may be fixed before the next tick, so the daemon keeps running.
		s.logger.WithError(err).Error("Reminder check aborted.")
	}
}

func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()
	s.logger.Info("Reminder scheduler gracefully stopped.")
}
