package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCheckOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-off <filter...>",
		Short: "Walk through matching Taskwarrior tasks and complete them",
		Long: "Exports the Taskwarrior tasks matching the filters, ordered by due date,\n" +
			"and asks for each one whether it has been completed.",
		// Taskwarrior filters such as -Reminder must reach the task manager untouched.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && (args[0] == "-h" || args[0] == "--help") {
				return cmd.Help()
			}
			return c.app.CheckOff(cmd.Context(), args)
		},
	}
}

func (c *CLI) newRemindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "Check off pending reminder tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Reminders(cmd.Context())
		},
	}
}
