package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTimeOfDay is returned when a time of day cannot be parsed or is out of range.
	ErrInvalidTimeOfDay = zerr.New("invalid time of day, expected HH:MM or HH:MM:SS")

	// ErrUnknownWeekday is returned when a recurrence tag does not name a weekday or DAILY.
	ErrUnknownWeekday = zerr.New("unknown weekday")

	// ErrInvalidDayBounds is returned when the day start is not before the day end.
	ErrInvalidDayBounds = zerr.New("day start must be before day end")

	// ErrEntryEndsBeforeStart is returned when a schedule entry would end before it starts.
	ErrEntryEndsBeforeStart = zerr.New("schedule entry ends before it starts")

	// ErrEntryIndexOutOfRange is returned when a schedule entry index does not exist.
	ErrEntryIndexOutOfRange = zerr.New("schedule entry index out of range")

	// ErrInvalidEntryIndex is returned when a schedule entry index is not an integer.
	ErrInvalidEntryIndex = zerr.New("task index must be an integer")

	// ErrEmptyTaskName is returned when a recurring task has no name.
	ErrEmptyTaskName = zerr.New("recurring task name must not be empty")

	// ErrNoRecurrence is returned when a recurring task is added without any weekday.
	ErrNoRecurrence = zerr.New("recurring task must recur on at least one day")

	// ErrRecurringTaskExists is returned when adding a recurring task whose name is taken.
	ErrRecurringTaskExists = zerr.New("recurring task already exists")

	// ErrRecurringTaskNotFound is returned when a named recurring task is not in the catalog.
	ErrRecurringTaskNotFound = zerr.New("recurring task not found")

	// ErrEditorInputClosed is returned when the input ends before the editor was quit.
	ErrEditorInputClosed = zerr.New("input closed before quit")

	// ErrInvalidDate is returned when a --date value is not an ISO-8601 date.
	ErrInvalidDate = zerr.New("invalid date, expected YYYY-MM-DD")

	// ErrUnknownRenderFormat is returned when a schedule output format is not supported.
	ErrUnknownRenderFormat = zerr.New("unknown output format, expected 'text' or 'latex'")

	// ErrNegativeIndent is returned when a markup indentation depth is negative.
	ErrNegativeIndent = zerr.New("indentation depth must not be negative")

	// ErrNoFilters is returned when the check-off command is run without filters.
	ErrNoFilters = zerr.New("at least one task filter is required")

	// ErrUnknownStoreBackend is returned when the configured store backend is not supported.
	ErrUnknownStoreBackend = zerr.New("unknown store backend, expected 'json' or 'sqlite'")

	// ErrUnknownLogFormat is returned when the configured log format is not supported.
	ErrUnknownLogFormat = zerr.New("unknown log format, expected 'pretty' or 'json'")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrHomeDirUnavailable is returned when no data directory can be derived.
	ErrHomeDirUnavailable = zerr.New("failed to determine home directory")

	// ErrStoreCreateFailed is returned when the data directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create data directory")

	// ErrStoreReadFailed is returned when the catalog cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read recurring tasks")

	// ErrStoreUnmarshalFailed is returned when the catalog cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to decode recurring tasks")

	// ErrStoreMarshalFailed is returned when the catalog cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to encode recurring tasks")

	// ErrStoreWriteFailed is returned when the catalog cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write recurring tasks")

	// ErrStoreOpenFailed is returned when the catalog database cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open recurring task database")

	// ErrTaskManagerFailed is returned when the external task manager exits with an error.
	ErrTaskManagerFailed = zerr.New("task manager command failed")

	// ErrTaskExportParseFailed is returned when the task manager export is not valid JSON.
	ErrTaskExportParseFailed = zerr.New("failed to parse task export")
)
