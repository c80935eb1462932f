package domain

import (
	"slices"
	"time"
)

// RecurringTask is a named activity with a usual time window that repeats on fixed weekdays.
// A UsualEnd before UsualStart is accepted here and only rejected when a schedule is built.
type RecurringTask struct {
	Name       string
	UsualStart TimeOfDay
	UsualEnd   TimeOfDay
	Recur      []Weekday
}

// AppliesTo reports whether the task recurs on the calendar day of date.
func (t RecurringTask) AppliesTo(date time.Time) bool {
	if slices.Contains(t.Recur, Daily) {
		return true
	}
	return slices.Contains(t.Recur, WeekdayOf(date))
}

// Length returns the usual duration of the task.
func (t RecurringTask) Length() time.Duration {
	return time.Duration(t.UsualEnd-t.UsualStart) * time.Second
}
