package ports

import (
	"context"

	"go.trai.ch/tasker/internal/core/domain"
)

// CatalogStore defines the interface for persisting the recurring task catalog.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CatalogStore interface {
	// Load returns the stored catalog.
	// A store that was never written yields an empty catalog with the default day bounds.
	Load(ctx context.Context) (*domain.Catalog, error)

	// Save replaces the stored catalog.
	Save(ctx context.Context, catalog *domain.Catalog) error
}
