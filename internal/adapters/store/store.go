// Package store persists the recurring task catalog.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/tasker/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store is a CatalogStore that may hold resources to release.
type Store interface {
	ports.CatalogStore
	Close() error
}

// Open initializes the catalog store selected by settings.
//
// Open is the only place that touches the filesystem on start-up: it creates
// settings.DataDir when missing and logs that it did so.
func Open(settings *domain.Settings, logger ports.Logger) (Store, error) {
	created, err := ensureDir(settings.DataDir)
	if err != nil {
		return nil, zerr.With(err, "data_dir", settings.DataDir)
	}
	if created {
		logger.Info(fmt.Sprintf("created data directory %s", settings.DataDir))
	}

	switch settings.Store {
	case domain.StoreBackendJSON, "":
		return NewFileStore(domain.DataFilePath(settings.DataDir), settings.DayStart, settings.DayEnd), nil
	case domain.StoreBackendSQLite:
		return OpenSQLite(domain.DatabasePath(settings.DataDir), settings.DayStart, settings.DayEnd)
	default:
		err := zerr.Wrap(domain.ErrUnknownStoreBackend, string(settings.Store))
		return nil, zerr.With(err, "store", string(settings.Store))
	}
}

func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, zerr.Wrap(fmt.Errorf("%s is not a directory", dir), domain.ErrStoreCreateFailed.Error())
	case !errors.Is(err, fs.ErrNotExist):
		return false, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	return true, nil
}
