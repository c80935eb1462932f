package ports

import "go.trai.ch/tasker/internal/core/domain"

// ConfigLoader defines the interface for loading user settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings stored in dataDir.
	// A missing config file yields the default settings for dataDir.
	Load(dataDir string) (*domain.Settings, error)
}
