package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/ui/output"
	"go.trai.ch/zerr"
)

// CompletedPrompt is the question asked for every listed task.
const CompletedPrompt = "Completed?: "

// CheckOff walks the tasks matching filters in due order and completes the
// ones the user confirms.
func (a *App) CheckOff(ctx context.Context, filters []string) error {
	if len(filters) == 0 {
		return domain.ErrNoFilters
	}

	tasks, err := a.tasks.Export(ctx, filters)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		a.logger.Info("no matching tasks")
		return nil
	}

	sortByDue(tasks)
	separator := output.Separator(output.Width(a.out))
	now := a.now()

	for _, task := range tasks {
		due := "none"
		if d, ok := task.TimeTillDue(now); ok {
			due = domain.FormatTimeTill(d)
		}
		if _, err := fmt.Fprintf(a.out, "%d -- \"%s\" -- Due: %s\n", task.ID, task.Description, due); err != nil {
			return err
		}

		answer, err := a.prompter.Prompt(CompletedPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				a.logger.Warn("input closed, stopping check-off")
				return nil
			}
			return zerr.Wrap(err, "failed to read answer")
		}

		if confirmed(answer) {
			result, err := a.tasks.Complete(ctx, task.ID)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(a.out, result); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(a.out, separator); err != nil {
			return err
		}
	}
	return nil
}

// Reminders runs CheckOff with the configured reminder filters.
func (a *App) Reminders(ctx context.Context) error {
	return a.CheckOff(ctx, a.settings.Filters())
}

// sortByDue orders tasks by due date. Tasks without one keep their relative
// order after all dated tasks.
func sortByDue(tasks []domain.PendingTask) {
	slices.SortStableFunc(tasks, func(x, y domain.PendingTask) int {
		switch {
		case x.Due == nil && y.Due == nil:
			return 0
		case x.Due == nil:
			return 1
		case y.Due == nil:
			return -1
		default:
			return x.Due.Compare(y.Due.Time)
		}
	})
}

func confirmed(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && strings.EqualFold(answer[:1], "y")
}

