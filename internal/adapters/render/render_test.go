package render_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/adapters/render"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.January, 1, hour, minute, 0, 0, time.UTC)
}

func sampleDay(t *testing.T) []domain.ScheduleEntry {
	t.Helper()

	s := domain.NewSchedule(at(0, 0), domain.MustTimeOfDay(9, 0, 0), domain.MustTimeOfDay(17, 0, 0))
	for _, e := range []struct {
		name       string
		start, end time.Time
	}{
		{"Standup", at(9, 0), at(9, 15)},
		{"Lunch", at(12, 0), at(13, 0)},
		{"Review", at(13, 0), at(14, 30)},
	} {
		entry, err := domain.NewScheduleEntry(e.name, e.start, e.end)
		require.NoError(t, err)
		s.Insert(entry)
	}
	return s.FilledGaps()
}

func TestText_Render(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, render.NewText().Render(&buf, sampleDay(t)))

	g := goldie.New(t)
	g.Assert(t, "text_day", buf.Bytes())
}

func TestText_EmptyDay(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	s := domain.NewSchedule(at(0, 0), domain.MustTimeOfDay(9, 0, 0), domain.MustTimeOfDay(17, 0, 0))

	var buf bytes.Buffer
	require.NoError(t, render.NewText().Render(&buf, s.FilledGaps()))

	assert.Equal(t, "  : 09:00--17:00 -> ???\n", buf.String())
}

func TestLatex_Render(t *testing.T) {
	tests := []struct {
		name   string
		indent int
		golden string
	}{
		{name: "flush", indent: 0, golden: "latex_flush"},
		{name: "indented", indent: 2, golden: "latex_indented"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.NewLatex(tt.indent).Render(&buf, sampleDay(t)))

			g := goldie.New(t)
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	entries := sampleDay(t)
	for _, r := range []ports.ScheduleRenderer{render.NewText(), render.NewLatex(1)} {
		var first, second bytes.Buffer
		require.NoError(t, r.Render(&first, entries))
		require.NoError(t, r.Render(&second, entries))
		assert.Equal(t, first.String(), second.String())
	}
}

func TestForFormat(t *testing.T) {
	r, err := render.ForFormat(render.FormatText, 4)
	require.NoError(t, err)
	assert.IsType(t, &render.Text{}, r)

	r, err = render.ForFormat("", 0)
	require.NoError(t, err)
	assert.IsType(t, &render.Text{}, r)

	r, err = render.ForFormat(render.FormatLatex, 3)
	require.NoError(t, err)
	assert.Equal(t, &render.Latex{Indent: 3}, r)

	_, err = render.ForFormat(render.FormatLatex, -1)
	assert.ErrorIs(t, err, domain.ErrNegativeIndent)

	_, err = render.ForFormat("html", 0)
	assert.ErrorIs(t, err, domain.ErrUnknownRenderFormat)
}
