package cli

import (
	"fmt"

	"birthday_reminder/internal/app"

	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the record store with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup()
			if err != nil {
				return err
			}
			defer rt.close()

			if err := rt.recordService().Init(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Record store initialized.")
			return nil
		},
	}
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a birthday or an anniversary",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "birthday <name> <YYYY-MM-DD>",
		Short: "Add or replace a contact's date of birth",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *app.RecordService) error {
				if err := svc.AddBirthday(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added birthday of %s.\n", args[0])
				return nil
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "anniversary <subject> <YYYY-MM-DD>",
		Short: "Add or replace an anniversary",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *app.RecordService) error {
				if err := svc.AddAnniversary(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added anniversary %s.\n", args[0])
				return nil
			})
		},
	})
	return cmd
}

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a birthday or an anniversary",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "birthday <name>",
		Short: "Remove a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *app.RecordService) error {
				return svc.RemoveBirthday(cmd.Context(), args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "anniversary <subject>",
		Short: "Remove an anniversary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *app.RecordService) error {
				return svc.RemoveAnniversary(cmd.Context(), args[0])
			})
		},
	})
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List contacts and anniversaries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRecords(cmd, func(svc *app.RecordService) error {
				contacts, anniversaries, err := svc.List(cmd.Context())
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "Birthdays:")
				for _, e := range contacts {
					fmt.Fprintf(out, "  %s  %s\n", e.Date, e.Key)
				}
				fmt.Fprintln(out, "Anniversaries:")
				for _, e := range anniversaries {
					fmt.Fprintf(out, "  %s  %s\n", e.Date, e.Key)
				}
				return nil
			})
		},
	}
}

func withRecords(cmd *cobra.Command, fn func(svc *app.RecordService) error) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()
	return fn(rt.recordService())
}
