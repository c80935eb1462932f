package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/tasker/internal/core/domain"
)

func (c *CLI) newRecurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recurring",
		Aliases: []string{"rec"},
		Short:   "Manage recurring task definitions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ListRecurring(cmd.Context())
		},
	}

	cmd.AddCommand(c.newRecurringListCmd())
	cmd.AddCommand(c.newRecurringAddCmd())
	cmd.AddCommand(c.newRecurringRemoveCmd())
	cmd.AddCommand(c.newRecurringBoundsCmd())

	return cmd
}

func (c *CLI) newRecurringListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recurring tasks and the day bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.ListRecurring(cmd.Context())
		},
	}
}

func (c *CLI) newRecurringAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a recurring task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawStart, _ := cmd.Flags().GetString("start")
			rawEnd, _ := cmd.Flags().GetString("end")
			on, _ := cmd.Flags().GetStringSlice("on")

			start, err := domain.ParseTimeOfDay(rawStart)
			if err != nil {
				return err
			}
			end, err := domain.ParseTimeOfDay(rawEnd)
			if err != nil {
				return err
			}
			recur, err := domain.ParseWeekdays(on)
			if err != nil {
				return err
			}

			return c.app.AddRecurring(cmd.Context(), domain.RecurringTask{
				Name:       args[0],
				UsualStart: start,
				UsualEnd:   end,
				Recur:      recur,
			})
		},
	}

	cmd.Flags().String("start", "", "Usual start time (HH:MM[:SS])")
	cmd.Flags().String("end", "", "Usual end time (HH:MM[:SS])")
	cmd.Flags().StringSlice("on", nil, "Weekdays the task recurs on, or daily")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	_ = cmd.MarkFlagRequired("on")

	return cmd
}

func (c *CLI) newRecurringRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a recurring task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.RemoveRecurring(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newRecurringBoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds <start> <end>",
		Short: "Set when scheduled days start and end",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := domain.ParseTimeOfDay(args[0])
			if err != nil {
				return err
			}
			end, err := domain.ParseTimeOfDay(args[1])
			if err != nil {
				return err
			}
			return c.app.SetDayBounds(cmd.Context(), start, end)
		},
	}
}
