package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"birthday_reminder/internal/app"
	"birthday_reminder/internal/domain/record"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var today string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Send notifications for records due today",
	}
	cmd.PersistentFlags().StringVar(&today, "today", "", "Pretend today is this date (YYYY-MM-DD)")

	sub := func(use, short string, run func(ctx context.Context, svc *app.ReminderServiceImpl) ([]*app.CheckResult, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
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
				if today != "" {
					fixed, err := record.ParseDate(today)
					if err != nil {
						return fmt.Errorf("--today: %w", err)
					}
					svc.WithClock(func() time.Time { return fixed })
				}

				results, err := run(cmd.Context(), svc)
				printResults(cmd.OutOrStdout(), results)
				return err
			},
		}
	}

	cmd.AddCommand(sub("birthdays", "Check contacts' birthdays", func(ctx context.Context, svc *app.ReminderServiceImpl) ([]*app.CheckResult, error) {
		res, err := svc.CheckBirthdays(ctx)
		if err != nil {
			return nil, err
		}
		return []*app.CheckResult{res}, nil
	}))
	cmd.AddCommand(sub("anniversaries", "Check anniversaries", func(ctx context.Context, svc *app.ReminderServiceImpl) ([]*app.CheckResult, error) {
		res, err := svc.CheckAnniversaries(ctx)
		if err != nil {
			return nil, err
		}
		return []*app.CheckResult{res}, nil
	}))
	cmd.AddCommand(sub("all", "Check birthdays and anniversaries", func(ctx context.Context, svc *app.ReminderServiceImpl) ([]*app.CheckResult, error) {
		return svc.CheckAll(ctx)
	}))
	return cmd
}

func printResults(w io.Writer, results []*app.CheckResult) {
	for _, res := range results {
		fmt.Fprintf(w, "%s %s: %d due, %d sent, %d failed\n",
			record.FormatDate(res.Today), res.Kind, len(res.Matched), len(res.Delivered), len(res.Failed))
	}
}
