package domain

import (
	"fmt"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// Weekday is a recurrence tag. Monday is 0 and Sunday is 6; Daily matches every date.
type Weekday int

// Recurrence tags.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
	Daily
)

var weekdayNames = [...]string{
	Monday:    "MONDAY",
	Tuesday:   "TUESDAY",
	Wednesday: "WEDNESDAY",
	Thursday:  "THURSDAY",
	Friday:    "FRIDAY",
	Saturday:  "SATURDAY",
	Sunday:    "SUNDAY",
	Daily:     "DAILY",
}

// WeekdayOf returns the weekday of t with Monday as 0.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// ParseWeekday parses a recurrence tag case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range weekdayNames {
		if n == name {
			return Weekday(i), nil
		}
	}
	return 0, zerr.With(zerr.Wrap(ErrUnknownWeekday, fmt.Sprintf("%q", s)), "value", s)
}

// ParseWeekdays parses a list of recurrence tags.
func ParseWeekdays(values []string) ([]Weekday, error) {
	days := make([]Weekday, 0, len(values))
	for _, v := range values {
		d, err := ParseWeekday(v)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// String returns the upper-case tag name, e.g. "MONDAY".
func (d Weekday) String() string {
	if d < Monday || d > Daily {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Weekday) MarshalText() ([]byte, error) {
	if d < Monday || d > Daily {
		return nil, zerr.With(ErrUnknownWeekday, "value", int(d))
	}
	return []byte(weekdayNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
