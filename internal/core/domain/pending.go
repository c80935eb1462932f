package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"go.trai.ch/zerr"
)

// TaskwarriorTimeLayout is the compact UTC layout used by task manager exports.
const TaskwarriorTimeLayout = "20060102T150405Z"

// Timestamp is a point in time as written by the task manager.
type Timestamp struct {
	time.Time
}

// UnmarshalText accepts the compact export layout and RFC 3339.
func (t *Timestamp) UnmarshalText(text []byte) error {
	s := string(text)
	for _, layout := range []string{TaskwarriorTimeLayout, time.RFC3339} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return zerr.With(zerr.Wrap(ErrTaskExportParseFailed, fmt.Sprintf("invalid timestamp %q", s)), "value", s)
}

// MarshalText writes the compact export layout.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.UTC().Format(TaskwarriorTimeLayout)), nil
}

// UnmarshalJSON shadows the RFC 3339 only decoder promoted from time.Time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return zerr.Wrap(err, ErrTaskExportParseFailed.Error())
	}
	return t.UnmarshalText([]byte(s))
}

// MarshalJSON shadows the encoder promoted from time.Time.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	text, _ := t.MarshalText()
	return json.Marshal(string(text))
}

// PendingTask is a task exported from the external task manager.
type PendingTask struct {
	ID          int        `json:"id"`
	UUID        string     `json:"uuid"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Tags        []string   `json:"tags,omitempty"`
	Due         *Timestamp `json:"due,omitempty"`
}

// TimeTillDue returns how long remains until the task is due.
// The boolean is false when the task has no due date.
func (p PendingTask) TimeTillDue(now time.Time) (time.Duration, bool) {
	if p.Due == nil {
		return 0, false
	}
	return p.Due.Sub(now), true
}

// FormatTimeTill renders a duration as "[-][N day(s), ]H:MM:SS".
func FormatTimeTill(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int64(d / time.Second)
	days := total / (24 * secondsPerHour)
	rest := total % (24 * secondsPerHour)
	clock := fmt.Sprintf("%d:%02d:%02d", rest/secondsPerHour, rest%secondsPerHour/secondsPerMinute, rest%secondsPerMinute)

	switch days {
	case 0:
		return sign + clock
	case 1:
		return sign + "1 day, " + clock
	default:
		return fmt.Sprintf("%s%d days, %s", sign, days, clock)
	}
}
