// Package commands implements the CLI commands for tasker.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/tasker/internal/app"
	"go.trai.ch/tasker/internal/build"
	"go.trai.ch/tasker/internal/core/domain"
)

// CLI represents the command line interface for tasker.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Schedule(ctx context.Context, opts app.ScheduleOptions) error
	Week(ctx context.Context, opts app.WeekOptions) error
	CheckOff(ctx context.Context, filters []string) error
	Reminders(ctx context.Context) error
	ListRecurring(ctx context.Context) error
	AddRecurring(ctx context.Context, task domain.RecurringTask) error
	RemoveRecurring(ctx context.Context, name string) error
	SetDayBounds(ctx context.Context, start, end domain.TimeOfDay) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "tasker",
		Short:         "Plan your day around recurring tasks and Taskwarrior",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newScheduleCmd())
	rootCmd.AddCommand(c.newWeekCmd())
	rootCmd.AddCommand(c.newCheckOffCmd())
	rootCmd.AddCommand(c.newRemindersCmd())
	rootCmd.AddCommand(c.newRecurringCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
