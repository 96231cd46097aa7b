package cli

import (
	"fmt"
	"io"

	"birthday_reminder/internal/app"
	"birthday_reminder/internal/domain/record"

	"github.com/spf13/cobra"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change reminder settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *app.RecordService) error {
				s, err := svc.Settings(cmd.Context())
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), s)
				return nil
			})
		},
	})

	var photo, repeat bool
	var countdown int
	set := &cobra.Command{
		Use:   "set",
		Short: "Change settings; only flags that are given are applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			return withRecords(cmd, func(svc *app.RecordService) error {
				s, err := svc.UpdateSettings(cmd.Context(), func(s *record.Settings) {
					if flags.Changed("photo") {
						s.Photo = photo
					}
					if flags.Changed("repeat") {
						s.Repeat = repeat
					}
					if flags.Changed("countdown-days") {
						s.CountdownDays = countdown
					}
				})
				if err != nil {
					return err
				}
				printSettings(cmd.OutOrStdout(), s)
				return nil
			})
		},
	}
	set.Flags().BoolVar(&photo, "photo", true, "Attach contact photos to birthday notifications")
	set.Flags().BoolVar(&repeat, "repeat", false, "Reserved")
	set.Flags().IntVar(&countdown, "countdown-days", 0, "Notify this many days ahead; 0 notifies on the day")
	cmd.AddCommand(set)

	return cmd
}

func printSettings(w io.Writer, s record.Settings) {
	fmt.Fprintf(w, "photo: %t\nrepeat: %t\ncountdown_days: %d\n", s.Photo, s.Repeat, s.CountdownDays)
}
