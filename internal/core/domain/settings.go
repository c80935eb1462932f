package domain

import "slices"

// StoreBackend selects where the catalog is persisted.
type StoreBackend string

// Supported store backends.
const (
	StoreBackendJSON   StoreBackend = "json"
	StoreBackendSQLite StoreBackend = "sqlite"
)

// LogFormat selects how log records are written.
type LogFormat string

// Supported log formats.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Default settings values.
const (
	DefaultTaskBinary          = "task"
	DefaultDayStart  TimeOfDay = 8 * secondsPerHour
	DefaultDayEnd    TimeOfDay = 22 * secondsPerHour
)

// DefaultReminderFilters are the task manager filters used by the reminders command.
func DefaultReminderFilters() []string {
	return []string{"+Reminder", "status:pending"}
}

// Settings is the resolved user configuration.
type Settings struct {
	DataDir         string
	Store           StoreBackend
	TaskBinary      string
	ReminderFilters []string
	DayStart        TimeOfDay
	DayEnd          TimeOfDay
	LatexIndent     int
	LogFormat       LogFormat
}

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings(dataDir string) *Settings {
	return &Settings{
		DataDir:         dataDir,
		Store:           StoreBackendJSON,
		TaskBinary:      DefaultTaskBinary,
		ReminderFilters: DefaultReminderFilters(),
		DayStart:        DefaultDayStart,
		DayEnd:          DefaultDayEnd,
		LatexIndent:     0,
		LogFormat:       LogFormatPretty,
	}
}

// Filters returns a copy of the reminder filters.
func (s *Settings) Filters() []string {
	return slices.Clone(s.ReminderFilters)
}
