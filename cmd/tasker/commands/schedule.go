package commands

import (
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/tasker/internal/adapters/render"
	"go.trai.ch/tasker/internal/app"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
)

// dateLayouts are the ISO-8601 forms accepted by --date, most specific last.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func (c *CLI) newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Propose, edit and print the schedule for a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderOpts, date, err := renderFlags(cmd)
			if err != nil {
				return err
			}
			noEdit, _ := cmd.Flags().GetBool("no-edit")

			return c.app.Schedule(cmd.Context(), app.ScheduleOptions{
				RenderOptions: renderOpts,
				Date:          date,
				NoEdit:        noEdit,
			})
		},
	}
	addRenderFlags(cmd)
	cmd.Flags().Bool("no-edit", false, "Print the proposed schedule without editing it")
	return cmd
}

func (c *CLI) newWeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "week",
		Short: "Preview the proposed schedule of every day of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderOpts, date, err := renderFlags(cmd)
			if err != nil {
				return err
			}

			return c.app.Week(cmd.Context(), app.WeekOptions{
				RenderOptions: renderOpts,
				Date:          date,
			})
		},
	}
	addRenderFlags(cmd)
	return cmd
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("date", "d", "", "Date to plan as YYYY-MM-DD or an ISO-8601 date-time (default today)")
	cmd.Flags().StringP("format", "f", string(render.FormatText), "Output format: text or latex")
	cmd.Flags().Int("indent", 0, "Tabs to indent LaTeX output by (default from config)")
}

func renderFlags(cmd *cobra.Command) (app.RenderOptions, time.Time, error) {
	format, _ := cmd.Flags().GetString("format")
	opts := app.RenderOptions{Format: render.Format(format)}

	if cmd.Flags().Changed("indent") {
		indent, _ := cmd.Flags().GetInt("indent")
		opts.Indent = &indent
	}

	rawDate, _ := cmd.Flags().GetString("date")
	date, err := parseDate(rawDate)
	if err != nil {
		return app.RenderOptions{}, time.Time{}, err
	}
	return opts, date, nil
}

// parseDate returns the zero time for an empty value.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, zerr.With(zerr.Wrap(domain.ErrInvalidDate, value), "date", value)
}
