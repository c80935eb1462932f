// Package scheduler derives dated schedules from recurring task definitions.
package scheduler

import (
	"time"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
)

// DateLayout is the calendar date form used in error metadata and flags.
const DateLayout = "2006-01-02"

const daysPerWeek = 7

// Builder materializes the recurring tasks that apply to a date into a Schedule.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build places every task that applies to date into a new schedule bounded by
// dayStart and dayEnd. Entries are kept in start order; overlaps are kept.
// A task whose usual end precedes its usual start fails the whole build.
func (b *Builder) Build(
	tasks []domain.RecurringTask,
	date time.Time,
	dayStart, dayEnd domain.TimeOfDay,
) (*domain.Schedule, error) {
	s := domain.NewSchedule(date, dayStart, dayEnd)

	for _, task := range tasks {
		if !task.AppliesTo(s.Date()) {
			continue
		}

		entry, err := domain.NewScheduleEntry(task.Name, task.UsualStart.On(s.Date()), task.UsualEnd.On(s.Date()))
		if err != nil {
			err = zerr.Wrap(err, "failed to build schedule")
			err = zerr.With(err, "date", s.Date().Format(DateLayout))
			return nil, zerr.With(err, "placed", s.Len())
		}
		s.Insert(entry)
	}

	return s, nil
}

// BuildFor builds the schedule for date from the catalog's tasks and day bounds.
func (b *Builder) BuildFor(catalog *domain.Catalog, date time.Time) (*domain.Schedule, error) {
	return b.Build(catalog.Tasks, date, catalog.DayStart, catalog.DayEnd)
}

// Week builds one schedule per day, Monday through Sunday, of the week containing date.
func (b *Builder) Week(catalog *domain.Catalog, date time.Time) ([]*domain.Schedule, error) {
	monday := date.AddDate(0, 0, -int(domain.WeekdayOf(date)))

	week := make([]*domain.Schedule, 0, daysPerWeek)
	for i := range daysPerWeek {
		s, err := b.BuildFor(catalog, monday.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week = append(week, s)
	}
	return week, nil
}
