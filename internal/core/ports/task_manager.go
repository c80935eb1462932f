package ports

import (
	"context"

	"go.trai.ch/tasker/internal/core/domain"
)

// TaskManager defines the interface to the external task manager.
//
//go:generate mockgen -source=task_manager.go -destination=mocks/mock_task_manager.go -package=mocks
type TaskManager interface {
	// Export returns the tasks matching the given filters.
	Export(ctx context.Context, filters []string) ([]domain.PendingTask, error)

	// Complete marks the task with the given id as done and returns the manager's output.
	Complete(ctx context.Context, id int) (string, error)
}
