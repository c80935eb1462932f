package domain

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
)

// timeOfDayLayouts are the accepted text forms, most specific first.
var timeOfDayLayouts = []string{"15:04:05", "15:04", "15"}

// TimeOfDay is a local wall-clock time, stored as seconds since midnight.
type TimeOfDay int

// NewTimeOfDay builds a TimeOfDay from its clock components.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		err := zerr.Wrap(ErrInvalidTimeOfDay, fmt.Sprintf("%02d:%02d:%02d is out of range", hour, minute, second))
		return 0, zerr.With(err, "value", fmt.Sprintf("%d:%d:%d", hour, minute, second))
	}
	return TimeOfDay(hour*secondsPerHour + minute*secondsPerMinute + second), nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input.
// It is intended for constants and tests.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay parses an ISO-8601 local time such as "07:30" or "07:30:15".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	value := strings.TrimSpace(s)
	for _, layout := range timeOfDayLayouts {
		if len(value) != len(layout) {
			continue
		}
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		return TimeOfDayOf(parsed), nil
	}

	err := zerr.Wrap(ErrInvalidTimeOfDay, fmt.Sprintf("cannot parse %q", s))
	return 0, zerr.With(err, "value", s)
}

// TimeOfDayOf returns the wall-clock part of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*secondsPerHour + t.Minute()*secondsPerMinute + t.Second())
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return int(t) / secondsPerHour }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return int(t) % secondsPerHour / secondsPerMinute }

// Second returns the second component.
func (t TimeOfDay) Second() int { return int(t) % secondsPerMinute }

// On places t on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, date.Location())
}

// String returns the ISO-8601 form HH:MM:SS.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
