package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/core/domain"
)

// monday is 2024-01-01, a Monday.
var monday = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func hm(hour, minute int) domain.TimeOfDay {
	return domain.MustTimeOfDay(hour, minute, 0)
}

func entry(t *testing.T, name string, start, end time.Time) domain.ScheduleEntry {
	t.Helper()
	e, err := domain.NewScheduleEntry(name, start, end)
	require.NoError(t, err)
	return e
}

type span struct {
	name       string
	start, end time.Time
}

func spans(entries []domain.ScheduleEntry) []span {
	out := make([]span, 0, len(entries))
	for _, e := range entries {
		out = append(out, span{name: e.Name, start: e.Start, end: e.End})
	}
	return out
}

func TestNewScheduleEntry_EndBeforeStart(t *testing.T) {
	_, err := domain.NewScheduleEntry("Lunch", at(13, 0), at(12, 0))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryEndsBeforeStart)
	assert.ErrorContains(t, err, `"Lunch"`)
	assert.ErrorContains(t, err, "2024-01-01T13:00:00")
	assert.ErrorContains(t, err, "2024-01-01T12:00:00")
}

func TestNewScheduleEntry_ZeroLength(t *testing.T) {
	e, err := domain.NewScheduleEntry("Ping", at(9, 0), at(9, 0))

	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), e.Duration())
	assert.False(t, e.IsPlaceholder())
}

func TestSchedule_Insert_OrderIndependent(t *testing.T) {
	a := entry(t, "A", at(9, 0), at(10, 0))
	b := entry(t, "B", at(11, 0), at(12, 0))
	c := entry(t, "C", at(14, 0), at(15, 0))

	orders := [][]domain.ScheduleEntry{
		{a, b, c},
		{c, b, a},
		{b, c, a},
		{c, a, b},
	}

	for _, order := range orders {
		s := domain.NewSchedule(monday, hm(8, 0), hm(18, 0))
		for _, e := range order {
			s.Insert(e)
		}
		assert.Equal(t, spans([]domain.ScheduleEntry{a, b, c}), spans(s.Entries()))
	}
}

func TestSchedule_Insert_EqualStartsKeepInsertionOrder(t *testing.T) {
	s := domain.NewSchedule(monday, hm(8, 0), hm(18, 0))
	s.Insert(entry(t, "first", at(9, 0), at(9, 30)))
	s.Insert(entry(t, "second", at(9, 0), at(10, 0)))
	s.Insert(entry(t, "early", at(8, 30), at(9, 0)))

	names := make([]string, 0, s.Len())
	for _, e := range s.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"early", "first", "second"}, names)
}

func TestSchedule_FilledGaps(t *testing.T) {
	tests := []struct {
		name     string
		dayStart domain.TimeOfDay
		dayEnd   domain.TimeOfDay
		entries  []span
		want     []span
	}{
		{
			name:     "empty day is one placeholder",
			dayStart: hm(9, 0),
			dayEnd:   hm(17, 0),
			want:     []span{{domain.PlaceholderName, at(9, 0), at(17, 0)}},
		},
		{
			name:     "standup then trailing gap",
			dayStart: hm(9, 0),
			dayEnd:   hm(17, 0),
			entries:  []span{{"Standup", at(9, 0), at(9, 15)}},
			want: []span{
				{"Standup", at(9, 0), at(9, 15)},
				{domain.PlaceholderName, at(9, 15), at(17, 0)},
			},
		},
		{
			name:     "non-adjacent entries",
			dayStart: hm(9, 0),
			dayEnd:   hm(17, 0),
			entries: []span{
				{"A", at(10, 0), at(11, 0)},
				{"B", at(13, 0), at(14, 0)},
			},
			want: []span{
				{domain.PlaceholderName, at(9, 0), at(10, 0)},
				{"A", at(10, 0), at(11, 0)},
				{domain.PlaceholderName, at(11, 0), at(13, 0)},
				{"B", at(13, 0), at(14, 0)},
				{domain.PlaceholderName, at(14, 0), at(17, 0)},
			},
		},
		{
			name:     "fully covered day is unchanged",
			dayStart: hm(9, 0),
			dayEnd:   hm(12, 0),
			entries: []span{
				{"A", at(9, 0), at(10, 0)},
				{"B", at(10, 0), at(12, 0)},
			},
			want: []span{
				{"A", at(9, 0), at(10, 0)},
				{"B", at(10, 0), at(12, 0)},
			},
		},
		{
			name:     "overlap is kept without placeholder",
			dayStart: hm(9, 0),
			dayEnd:   hm(12, 0),
			entries: []span{
				{"A", at(9, 0), at(10, 30)},
				{"B", at(10, 0), at(11, 0)},
			},
			want: []span{
				{"A", at(9, 0), at(10, 30)},
				{"B", at(10, 0), at(11, 0)},
				{domain.PlaceholderName, at(11, 0), at(12, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := domain.NewSchedule(monday, tt.dayStart, tt.dayEnd)
			for _, e := range tt.entries {
				s.Insert(entry(t, e.name, e.start, e.end))
			}

			got := s.FilledGaps()
			assert.Equal(t, tt.want, spans(got))
			assert.Equal(t, len(tt.entries), s.Len(), "gap-filling must not change the schedule")
			assert.Equal(t, spans(got), spans(s.FilledGaps()), "gap-filling must be deterministic")
		})
	}
}

func TestSchedule_FilledGaps_PlaceholdersAreMarked(t *testing.T) {
	s := domain.NewSchedule(monday, hm(9, 0), hm(10, 0))
	s.Insert(entry(t, "A", at(9, 15), at(9, 45)))

	filled := s.FilledGaps()
	require.Len(t, filled, 3)
	assert.True(t, filled[0].IsPlaceholder())
	assert.False(t, filled[1].IsPlaceholder())
	assert.True(t, filled[2].IsPlaceholder())
}

func TestSchedule_Delete(t *testing.T) {
	s := domain.NewSchedule(monday, hm(9, 0), hm(17, 0))
	s.Insert(entry(t, "A", at(9, 0), at(10, 0)))
	s.Insert(entry(t, "B", at(10, 0), at(11, 0)))

	err := s.Delete(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEntryIndexOutOfRange)
	assert.Equal(t, 2, s.Len())

	err = s.Delete(-1)
	assert.ErrorIs(t, err, domain.ErrEntryIndexOutOfRange)

	require.NoError(t, s.Delete(0))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "B", s.Entries()[0].Name)
}

func TestSchedule_EditStart_DoesNotResort(t *testing.T) {
	s := domain.NewSchedule(monday, hm(8, 0), hm(17, 0))
	s.Insert(entry(t, "A", at(9, 0), at(10, 0)))
	s.Insert(entry(t, "B", at(10, 0), at(12, 0)))

	require.NoError(t, s.EditStart(1, hm(8, 30)))

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Name)
	assert.Equal(t, "B", entries[1].Name)
	assert.Equal(t, at(8, 30), entries[1].Start)
	assert.Equal(t, at(12, 0), entries[1].End)
}

func TestSchedule_EditStart_Errors(t *testing.T) {
	s := domain.NewSchedule(monday, hm(8, 0), hm(17, 0))
	s.Insert(entry(t, "A", at(9, 0), at(10, 0)))

	err := s.EditStart(3, hm(9, 30))
	assert.ErrorIs(t, err, domain.ErrEntryIndexOutOfRange)

	err = s.EditStart(0, hm(11, 0))
	assert.ErrorIs(t, err, domain.ErrEntryEndsBeforeStart)
	assert.Equal(t, at(9, 0), s.Entries()[0].Start, "a rejected edit leaves the entry untouched")
}

func TestSchedule_EntriesIsACopy(t *testing.T) {
	s := domain.NewSchedule(monday, hm(8, 0), hm(17, 0))
	s.Insert(entry(t, "A", at(9, 0), at(10, 0)))

	entries := s.Entries()
	entries[0].Name = "changed"

	assert.Equal(t, "A", s.Entries()[0].Name)
}

func TestNewSchedule_NormalizesDate(t *testing.T) {
	s := domain.NewSchedule(at(15, 42), hm(8, 0), hm(17, 0))

	assert.Equal(t, monday, s.Date())
	assert.Equal(t, at(8, 0), s.DayStart())
	assert.Equal(t, at(17, 0), s.DayEnd())
}
