package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/config"      //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/adapters/console"     //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/adapters/logger"      //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/adapters/store"       //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/adapters/taskwarrior" //nolint:depguard // Wired in app layer
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/tasker/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			store.NodeID,
			taskwarrior.NodeID,
			scheduler.NodeID,
			console.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			store.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	catalogStore, err := graft.Dep[store.Store](ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := graft.Dep[ports.TaskManager](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[*scheduler.Builder](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}

	return New(catalogStore, tasks, builder, prompter, log, settings), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	catalogStore, err := graft.Dep[store.Store](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(a, log, catalogStore.Close), nil
}
