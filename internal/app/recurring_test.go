package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestApp_ListRecurring(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(standupCatalog(t), nil)

	require.NoError(t, f.app.ListRecurring(context.Background()))

	out := f.out.String()
	assert.Contains(t, out, "Day: 09:00:00--17:00:00\n")
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Standup")
	assert.Contains(t, out, "DAILY")
	assert.Contains(t, out, "TUESDAY")
}

func TestApp_ListRecurring_Empty(t *testing.T) {
	f := newFixture(t)
	c, err := domain.NewCatalog(domain.DefaultDayStart, domain.DefaultDayEnd)
	require.NoError(t, err)
	f.store.EXPECT().Load(gomock.Any()).Return(c, nil)

	require.NoError(t, f.app.ListRecurring(context.Background()))
	assert.Equal(t, "Day: 08:00:00--22:00:00\nNo recurring tasks\n", f.out.String())
}

func TestApp_AddRecurring(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(standupCatalog(t), nil)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Catalog) error {
		found, ok := c.Find("Lunch")
		require.True(t, ok)
		assert.Equal(t, domain.MustTimeOfDay(12, 0, 0), found.UsualStart)
		return nil
	})
	f.logger.EXPECT().Info(`added recurring task "Lunch"`)

	err := f.app.AddRecurring(context.Background(), domain.RecurringTask{
		Name:       "Lunch",
		UsualStart: domain.MustTimeOfDay(12, 0, 0),
		UsualEnd:   domain.MustTimeOfDay(13, 0, 0),
		Recur:      []domain.Weekday{domain.Daily},
	})
	require.NoError(t, err)
}

func TestApp_AddRecurring_DuplicateIsNotSaved(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(standupCatalog(t), nil)

	err := f.app.AddRecurring(context.Background(), domain.RecurringTask{
		Name:  "Standup",
		Recur: []domain.Weekday{domain.Monday},
	})
	assert.ErrorIs(t, err, domain.ErrRecurringTaskExists)
}

func TestApp_RemoveRecurring(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(standupCatalog(t), nil)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Catalog) error {
		_, ok := c.Find("Gym")
		assert.False(t, ok)
		return nil
	})
	f.logger.EXPECT().Info(gomock.Any())

	require.NoError(t, f.app.RemoveRecurring(context.Background(), "Gym"))
}

func TestApp_RemoveRecurring_Missing(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(standupCatalog(t), nil)

	err := f.app.RemoveRecurring(context.Background(), "Nap")
	assert.ErrorIs(t, err, domain.ErrRecurringTaskNotFound)
}

func TestApp_SetDayBounds(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(standupCatalog(t), nil)
	f.store.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *domain.Catalog) error {
		assert.Equal(t, domain.MustTimeOfDay(7, 0, 0), c.DayStart)
		assert.Equal(t, domain.MustTimeOfDay(20, 0, 0), c.DayEnd)
		return nil
	})
	f.logger.EXPECT().Info("day now runs from 07:00:00 to 20:00:00")

	require.NoError(t, f.app.SetDayBounds(context.Background(), domain.MustTimeOfDay(7, 0, 0), domain.MustTimeOfDay(20, 0, 0)))
}

func TestApp_SetDayBounds_Reversed(t *testing.T) {
	f := newFixture(t)
	f.store.EXPECT().Load(gomock.Any()).Return(standupCatalog(t), nil)

	err := f.app.SetDayBounds(context.Background(), domain.MustTimeOfDay(20, 0, 0), domain.MustTimeOfDay(7, 0, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidDayBounds)
}
