package domain

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"go.trai.ch/zerr"
)

// Schedule is the ordered sequence of entries proposed for one calendar day.
// Entries are kept sorted by start time; entries with equal starts keep insertion order.
type Schedule struct {
	date     time.Time
	dayStart time.Time
	dayEnd   time.Time
	entries  []ScheduleEntry
}

// NewSchedule creates an empty schedule for the calendar day of date.
func NewSchedule(date time.Time, dayStart, dayEnd TimeOfDay) *Schedule {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return &Schedule{
		date:     day,
		dayStart: dayStart.On(day),
		dayEnd:   dayEnd.On(day),
		entries:  make([]ScheduleEntry, 0),
	}
}

// Date returns midnight of the scheduled day.
func (s *Schedule) Date() time.Time { return s.date }

// DayStart returns the start of the scheduled day.
func (s *Schedule) DayStart() time.Time { return s.dayStart }

// DayEnd returns the end of the scheduled day.
func (s *Schedule) DayEnd() time.Time { return s.dayEnd }

// Len returns the number of real entries.
func (s *Schedule) Len() int { return len(s.entries) }

// Entries returns a copy of the real entries in order.
func (s *Schedule) Entries() []ScheduleEntry {
	return slices.Clone(s.entries)
}

// Insert places e after every entry starting at or before e.Start.
func (s *Schedule) Insert(e ScheduleEntry) {
	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Start.After(e.Start)
	})
	s.entries = slices.Insert(s.entries, i, e)
}

// Delete removes the entry at index i.
func (s *Schedule) Delete(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.entries = slices.Delete(s.entries, i, i+1)
	return nil
}

// EditStart moves the start of entry i to start on the scheduled day.
// The entry keeps its position even if the sequence is no longer sorted.
func (s *Schedule) EditStart(i int, start TimeOfDay) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	current := s.entries[i]
	updated, err := NewScheduleEntry(current.Name, start.On(s.date), current.End)
	if err != nil {
		return err
	}
	s.entries[i] = updated
	return nil
}

// FilledGaps returns the entries with placeholders covering the unscheduled time
// between the day start, the entries, and the day end.
// Overlapping neighbours are kept as they are and get no placeholder.
func (s *Schedule) FilledGaps() []ScheduleEntry {
	if len(s.entries) == 0 {
		return []ScheduleEntry{newPlaceholder(s.dayStart, s.dayEnd)}
	}

	filled := make([]ScheduleEntry, 0, 2*len(s.entries)+1)

	first := s.entries[0]
	if first.Start.After(s.dayStart) {
		filled = append(filled, newPlaceholder(s.dayStart, first.Start))
	}
	filled = append(filled, first)

	for i := 1; i < len(s.entries); i++ {
		prev, curr := s.entries[i-1], s.entries[i]
		if prev.End.Before(curr.Start) {
			filled = append(filled, newPlaceholder(prev.End, curr.Start))
		}
		filled = append(filled, curr)
	}

	last := s.entries[len(s.entries)-1]
	if last.End.Before(s.dayEnd) {
		filled = append(filled, newPlaceholder(last.End, s.dayEnd))
	}

	return filled
}

func (s *Schedule) checkIndex(i int) error {
	if i < 0 || i >= len(s.entries) {
		err := zerr.Wrap(ErrEntryIndexOutOfRange, fmt.Sprintf("task %d", i))
		err = zerr.With(err, "index", i)
		return zerr.With(err, "len", len(s.entries))
	}
	return nil
}
