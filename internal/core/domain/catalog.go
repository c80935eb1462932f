package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// Catalog is the persisted set of recurring tasks together with the bounds of a day.
type Catalog struct {
	DayStart TimeOfDay
	DayEnd   TimeOfDay
	Tasks    []RecurringTask
}

// NewCatalog creates an empty catalog with the given day bounds.
func NewCatalog(dayStart, dayEnd TimeOfDay) (*Catalog, error) {
	if err := validateDayBounds(dayStart, dayEnd); err != nil {
		return nil, err
	}
	return &Catalog{
		DayStart: dayStart,
		DayEnd:   dayEnd,
		Tasks:    make([]RecurringTask, 0),
	}, nil
}

// SetDayBounds replaces the day start and end.
func (c *Catalog) SetDayBounds(dayStart, dayEnd TimeOfDay) error {
	if err := validateDayBounds(dayStart, dayEnd); err != nil {
		return err
	}
	c.DayStart = dayStart
	c.DayEnd = dayEnd
	return nil
}

// Find returns the task with the given name.
func (c *Catalog) Find(name string) (RecurringTask, bool) {
	i := slices.IndexFunc(c.Tasks, func(t RecurringTask) bool { return t.Name == name })
	if i < 0 {
		return RecurringTask{}, false
	}
	return c.Tasks[i], true
}

// Add appends a new recurring task. Names are unique within a catalog.
func (c *Catalog) Add(task RecurringTask) error {
	if task.Name == "" {
		return ErrEmptyTaskName
	}
	if len(task.Recur) == 0 {
		return zerr.With(zerr.Wrap(ErrNoRecurrence, task.Name), "task", task.Name)
	}
	if task.UsualEnd < task.UsualStart {
		err := zerr.Wrap(ErrEntryEndsBeforeStart,
			fmt.Sprintf("task %q usually ends at %s before it starts at %s", task.Name, task.UsualEnd, task.UsualStart))
		return zerr.With(err, "task", task.Name)
	}
	if _, ok := c.Find(task.Name); ok {
		return zerr.With(zerr.Wrap(ErrRecurringTaskExists, task.Name), "task", task.Name)
	}

	task.Recur = slices.Clone(task.Recur)
	c.Tasks = append(c.Tasks, task)
	return nil
}

// Remove deletes the task with the given name.
func (c *Catalog) Remove(name string) error {
	i := slices.IndexFunc(c.Tasks, func(t RecurringTask) bool { return t.Name == name })
	if i < 0 {
		return zerr.With(zerr.Wrap(ErrRecurringTaskNotFound, name), "task", name)
	}
	c.Tasks = slices.Delete(c.Tasks, i, i+1)
	return nil
}

// CatalogRecord is the persisted form of a Catalog.
type CatalogRecord struct {
	DayStart string                `json:"day_start" yaml:"day_start"`
	DayEnd   string                `json:"day_end"   yaml:"day_end"`
	Tasks    []RecurringTaskRecord `json:"tasks"     yaml:"tasks"`
}

// RecurringTaskRecord is the persisted form of a RecurringTask.
type RecurringTaskRecord struct {
	Name       string   `json:"name"        yaml:"name"`
	Recur      []string `json:"recur"       yaml:"recur"`
	UsualStart string   `json:"usual_start" yaml:"usual_start"`
	UsualEnd   string   `json:"usual_end"   yaml:"usual_end"`
}

// Record converts the catalog to its persisted form.
func (c *Catalog) Record() CatalogRecord {
	tasks := make([]RecurringTaskRecord, 0, len(c.Tasks))
	for _, t := range c.Tasks {
		recur := make([]string, 0, len(t.Recur))
		for _, d := range t.Recur {
			recur = append(recur, d.String())
		}
		tasks = append(tasks, RecurringTaskRecord{
			Name:       t.Name,
			Recur:      recur,
			UsualStart: t.UsualStart.String(),
			UsualEnd:   t.UsualEnd.String(),
		})
	}

	return CatalogRecord{
		DayStart: c.DayStart.String(),
		DayEnd:   c.DayEnd.String(),
		Tasks:    tasks,
	}
}

// CatalogFromRecord parses a persisted catalog.
func CatalogFromRecord(r CatalogRecord) (*Catalog, error) {
	dayStart, err := ParseTimeOfDay(r.DayStart)
	if err != nil {
		return nil, zerr.With(err, "field", "day_start")
	}
	dayEnd, err := ParseTimeOfDay(r.DayEnd)
	if err != nil {
		return nil, zerr.With(err, "field", "day_end")
	}

	c, err := NewCatalog(dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	for _, tr := range r.Tasks {
		task, err := tr.task()
		if err != nil {
			return nil, zerr.With(err, "task", tr.Name)
		}
		c.Tasks = append(c.Tasks, task)
	}

	return c, nil
}

func (r RecurringTaskRecord) task() (RecurringTask, error) {
	start, err := ParseTimeOfDay(r.UsualStart)
	if err != nil {
		return RecurringTask{}, err
	}
	end, err := ParseTimeOfDay(r.UsualEnd)
	if err != nil {
		return RecurringTask{}, err
	}
	recur, err := ParseWeekdays(r.Recur)
	if err != nil {
		return RecurringTask{}, err
	}
	return RecurringTask{
		Name:       r.Name,
		UsualStart: start,
		UsualEnd:   end,
		Recur:      recur,
	}, nil
}

func validateDayBounds(dayStart, dayEnd TimeOfDay) error {
	if dayStart >= dayEnd {
		err := zerr.Wrap(ErrInvalidDayBounds, fmt.Sprintf("day starts at %s and ends at %s", dayStart, dayEnd))
		err = zerr.With(err, "day_start", dayStart.String())
		return zerr.With(err, "day_end", dayEnd.String())
	}
	return nil
}
