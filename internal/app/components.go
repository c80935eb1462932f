package app

import "go.trai.ch/tasker/internal/core/ports"

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	closer func() error
}

// NewComponents creates a new Components struct from dependencies.
// closer releases the resources behind the app, such as the catalog store.
func NewComponents(app *App, logger ports.Logger, closer func() error) *Components {
	return &Components{
		App:    app,
		Logger: logger,
		closer: closer,
	}
}

// Close releases the resources held by the components.
func (c *Components) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}
