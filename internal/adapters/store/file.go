package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
)

// FileStore keeps the catalog in a single JSON document.
type FileStore struct {
	path     string
	dayStart domain.TimeOfDay
	dayEnd   domain.TimeOfDay

	// digest of the last encoding read or written, used to skip no-op saves.
	digest    uint64
	hasDigest bool
}

// NewFileStore creates a FileStore at path. The day bounds seed a catalog that was never saved.
func NewFileStore(path string, dayStart, dayEnd domain.TimeOfDay) *FileStore {
	return &FileStore{path: path, dayStart: dayStart, dayEnd: dayEnd}
}

// Load reads the catalog, returning an empty one when the file does not exist.
func (s *FileStore) Load(_ context.Context) (*domain.Catalog, error) {
	//nolint:gosec // path is derived from the data directory
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewCatalog(s.dayStart, s.dayEnd)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", s.path)
	}

	var record domain.CatalogRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", s.path)
	}

	catalog, err := domain.CatalogFromRecord(record)
	if err != nil {
		return nil, zerr.With(err, "path", s.path)
	}

	if encoded, err := encode(catalog); err == nil {
		s.remember(encoded)
	}

	return catalog, nil
}

// Save writes the catalog unless it is unchanged since the last Load or Save.
func (s *FileStore) Save(_ context.Context, catalog *domain.Catalog) error {
	data, err := encode(catalog)
	if err != nil {
		return err
	}

	if s.hasDigest && xxhash.Sum64(data) == s.digest {
		return nil
	}

	//nolint:gosec // path is derived from the data directory
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", s.path)
	}

	s.remember(data)
	return nil
}

// Close implements Store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) remember(data []byte) {
	s.digest = xxhash.Sum64(data)
	s.hasDigest = true
}

func encode(catalog *domain.Catalog) ([]byte, error) {
	data, err := json.MarshalIndent(catalog.Record(), "", " ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	return append(data, '\n'), nil
}
