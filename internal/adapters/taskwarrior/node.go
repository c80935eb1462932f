package taskwarrior

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/config"
	"go.trai.ch/tasker/internal/adapters/logger"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
)

// NodeID is the unique identifier for the task manager Graft node.
const NodeID graft.ID = "adapter.task_manager"

func init() {
	graft.Register(graft.Node[ports.TaskManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TaskManager, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewClient(settings.TaskBinary, log), nil
		},
	})
}
