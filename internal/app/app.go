// Package app implements the application layer for tasker.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.trai.ch/tasker/internal/adapters/render"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/tasker/internal/engine/editor"
	"go.trai.ch/tasker/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	store    ports.CatalogStore
	tasks    ports.TaskManager
	builder  *scheduler.Builder
	prompter ports.Prompter
	logger   ports.Logger
	settings *domain.Settings
	out      io.Writer
	now      func() time.Time
}

// New creates a new App instance.
func New(
	store ports.CatalogStore,
	tasks ports.TaskManager,
	builder *scheduler.Builder,
	prompter ports.Prompter,
	log ports.Logger,
	settings *domain.Settings,
) *App {
	return &App{
		store:    store,
		tasks:    tasks,
		builder:  builder,
		prompter: prompter,
		logger:   log,
		settings: settings,
		out:      os.Stdout,
		now:      time.Now,
	}
}

// WithOutput redirects user-facing output.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithPrompter replaces the source of interactive answers.
func (a *App) WithPrompter(p ports.Prompter) *App {
	a.prompter = p
	return a
}

// WithClock replaces the clock used for default dates and due times.
// This is primarily used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// RenderOptions selects how schedules are written.
type RenderOptions struct {
	Format render.Format
	// Indent overrides the configured LaTeX indentation when set.
	Indent *int
}

// ScheduleOptions configuration for the Schedule method.
type ScheduleOptions struct {
	RenderOptions
	// Date defaults to today.
	Date   time.Time
	NoEdit bool
}

// Schedule proposes the schedule for a date, lets the user edit it and prints
// the final result.
func (a *App) Schedule(ctx context.Context, opts ScheduleOptions) error {
	renderer, err := a.renderer(opts.RenderOptions)
	if err != nil {
		return err
	}

	catalog, err := a.store.Load(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to load recurring tasks")
	}

	s, err := a.builder.BuildFor(catalog, a.dateOrToday(opts.Date))
	if err != nil {
		return err
	}

	if !opts.NoEdit {
		s, err = editor.New(a.prompter, render.NewText(), a.out).Run(s)
		if err != nil {
			if !errors.Is(err, domain.ErrEditorInputClosed) {
				return err
			}
			a.logger.Warn("input closed before quit, keeping the current schedule")
		}
	}

	if _, err := fmt.Fprintln(a.out, "Final Schedule:"); err != nil {
		return err
	}
	return renderer.Render(a.out, s.FilledGaps())
}

// WeekOptions configuration for the Week method.
type WeekOptions struct {
	RenderOptions
	// Date selects the week; it defaults to today.
	Date time.Time
}

// Week prints the proposed schedule of every day of the week containing the date.
func (a *App) Week(ctx context.Context, opts WeekOptions) error {
	renderer, err := a.renderer(opts.RenderOptions)
	if err != nil {
		return err
	}

	catalog, err := a.store.Load(ctx)
	if err != nil {
		return zerr.Wrap(err, "failed to load recurring tasks")
	}

	week, err := a.builder.Week(catalog, a.dateOrToday(opts.Date))
	if err != nil {
		return err
	}

	for _, s := range week {
		if _, err := fmt.Fprintln(a.out, s.Date().Weekday().String()); err != nil {
			return err
		}
		if err := renderer.Render(a.out, s.FilledGaps()); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) renderer(opts RenderOptions) (ports.ScheduleRenderer, error) {
	indent := a.settings.LatexIndent
	if opts.Indent != nil {
		indent = *opts.Indent
	}
	return render.ForFormat(opts.Format, indent)
}

func (a *App) dateOrToday(date time.Time) time.Time {
	if date.IsZero() {
		return a.now()
	}
	return date
}
