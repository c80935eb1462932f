package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/ui/style"
	"go.trai.ch/zerr"
)

// ListRecurring prints the day bounds and every recurring task definition.
func (a *App) ListRecurring(ctx context.Context) error {
	catalog, err := a.store.Load(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to load recurring tasks")
	}

	if _, err := fmt.Fprintf(a.out, "Day: %s--%s\n", catalog.DayStart, catalog.DayEnd); err != nil {
		return err
	}
	if len(catalog.Tasks) == 0 {
		_, err := fmt.Fprintln(a.out, "No recurring tasks")
		return err
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(style.Iris)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(style.Slate)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers("NAME", "START", "END", "RECUR")

	for _, task := range catalog.Tasks {
		days := make([]string, 0, len(task.Recur))
		for _, d := range task.Recur {
			days = append(days, d.String())
		}
		t.Row(task.Name, task.UsualStart.String(), task.UsualEnd.String(), strings.Join(days, ","))
	}

	_, err = fmt.Fprintln(a.out, t.Render())
	return err
}

// AddRecurring adds a recurring task definition and saves the catalog.
func (a *App) AddRecurring(ctx context.Context, task domain.RecurringTask) error {
	return a.mutateCatalog(ctx, func(c *domain.Catalog) error {
		return c.Add(task)
	}, fmt.Sprintf("added recurring task %q", task.Name))
}

// RemoveRecurring removes the named recurring task definition and saves the catalog.
func (a *App) RemoveRecurring(ctx context.Context, name string) error {
	return a.mutateCatalog(ctx, func(c *domain.Catalog) error {
		return c.Remove(name)
	}, fmt.Sprintf("removed recurring task %q", name))
}

// SetDayBounds changes the start and end of every scheduled day and saves the catalog.
func (a *App) SetDayBounds(ctx context.Context, start, end domain.TimeOfDay) error {
	return a.mutateCatalog(ctx, func(c *domain.Catalog) error {
		return c.SetDayBounds(start, end)
	}, fmt.Sprintf("day now runs from %s to %s", start, end))
}

// mutateCatalog loads the catalog, applies fn and saves it exactly once.
func (a *App) mutateCatalog(ctx context.Context, fn func(*domain.Catalog) error, done string) error {
	catalog, err := a.store.Load(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to load recurring tasks")
	}

	if err := fn(catalog); err != nil {
		return err
	}

	if err := a.store.Save(ctx, catalog); err != nil {
		return zerr.Wrap(err, "failed to save recurring tasks")
	}

	a.logger.Info(done)
	return nil
}
