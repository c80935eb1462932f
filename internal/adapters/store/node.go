package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/config"
	"go.trai.ch/tasker/internal/adapters/logger"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
)

// NodeID is the unique identifier for the catalog store Graft node.
const NodeID graft.ID = "adapter.catalog_store"

func init() {
	graft.Register(graft.Node[Store]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (Store, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return Open(settings, log)
		},
	})
}
