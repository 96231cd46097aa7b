package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "reminder",
		Short: "Birthday and anniversary reminders",
		Long: `Reminds you of upcoming birthdays and anniversaries with desktop notifications.
Records live in a local JSON file (or Postgres) and are checked once per run.`,
		SilenceUsage: true,
	}

	root.AddCommand(newCheckCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newSettingsCmd())
	root.AddCommand(newDaemonCmd())
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
