package ports

import (
	"io"

	"go.trai.ch/tasker/internal/core/domain"
)

// ScheduleRenderer defines the interface for writing a gap-filled schedule.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ScheduleRenderer interface {
	// Render writes entries to w. Rendering the same entries twice yields identical output.
	Render(w io.Writer, entries []domain.ScheduleEntry) error
}
