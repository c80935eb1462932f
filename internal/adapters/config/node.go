package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/tasker/internal/adapters/logger"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SettingsNodeID is the unique identifier for the resolved settings Graft node.
	SettingsNodeID graft.ID = "adapter.settings"
)

type formatter interface {
	SetFormat(format domain.LogFormat) error
}

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return resolveSettings(loader, log)
		},
	})
}

// resolveSettings loads the settings for the resolved data directory and
// switches log to the configured format, so adapters built afterwards log in it.
func resolveSettings(loader ports.ConfigLoader, log ports.Logger) (*domain.Settings, error) {
	dataDir, err := ResolveDataDir()
	if err != nil {
		return nil, err
	}
	settings, err := loader.Load(dataDir)
	if err != nil {
		return nil, err
	}
	if f, ok := log.(formatter); ok {
		if err := f.SetFormat(settings.LogFormat); err != nil {
			return nil, err
		}
	}
	return settings, nil
}
