package domain

import (
	"fmt"
	"time"

	"go.trai.ch/zerr"
)

// PlaceholderName is the name of synthesized entries covering unscheduled time.
const PlaceholderName = "???"

// TimestampLayout is the ISO-8601 layout used when reporting entry timestamps.
const TimestampLayout = "2006-01-02T15:04:05"

// ScheduleEntry is one concrete time block on a schedule.
type ScheduleEntry struct {
	Name  string
	Start time.Time
	End   time.Time
}

// NewScheduleEntry creates an entry, rejecting an end before the start.
func NewScheduleEntry(name string, start, end time.Time) (ScheduleEntry, error) {
	if end.Before(start) {
		err := zerr.Wrap(ErrEntryEndsBeforeStart, fmt.Sprintf(
			"task %q ends at %s before it starts at %s",
			name, end.Format(TimestampLayout), start.Format(TimestampLayout),
		))
		err = zerr.With(err, "task", name)
		err = zerr.With(err, "start", start.Format(TimestampLayout))
		return ScheduleEntry{}, zerr.With(err, "end", end.Format(TimestampLayout))
	}
	return ScheduleEntry{Name: name, Start: start, End: end}, nil
}

func newPlaceholder(start, end time.Time) ScheduleEntry {
	return ScheduleEntry{Name: PlaceholderName, Start: start, End: end}
}

// IsPlaceholder reports whether the entry marks unscheduled time.
func (e ScheduleEntry) IsPlaceholder() bool {
	return e.Name == PlaceholderName
}

// Duration returns the length of the entry.
func (e ScheduleEntry) Duration() time.Duration {
	return e.End.Sub(e.Start)
}
