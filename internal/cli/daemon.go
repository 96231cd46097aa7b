package cli

import (
	"os"
	"os/signal"
	"syscall"

	"birthday_reminder/internal/infra/logger"
	"birthday_reminder/internal/infra/scheduler"

	"github.com/spf13/cobra"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run all checks on CRON_SPEC until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			svc, err := rt.reminderService()
			if err != nil {
				return err
			}

			sched := scheduler.NewReminderScheduler(svc, logger.Component("scheduler"), rt.cfg.CronSpec)
			if err := sched.Start(); err != nil {
				return err
			}

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit // Block until a signal is received

			sched.Stop()
			return nil
		},
	}
}
