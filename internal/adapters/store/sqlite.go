package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strings"

	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"

	_ "modernc.org/sqlite"
)

//go:embed migrations.sql
var migrations string

// recurSeparator joins weekday tags in the recur column.
const recurSeparator = ","

// SQLiteStore keeps the catalog in a SQLite database.
type SQLiteStore struct {
	db       *sql.DB
	path     string
	dayStart domain.TimeOfDay
	dayEnd   domain.TimeOfDay
}

// OpenSQLite opens or creates the database at path and applies the schema.
func OpenSQLite(path string, dayStart, dayEnd domain.TimeOfDay) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(migrations); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", path)
	}

	return &SQLiteStore{db: db, path: path, dayStart: dayStart, dayEnd: dayEnd}, nil
}

// Load reads the catalog. A database without day bounds uses the configured defaults.
func (s *SQLiteStore) Load(ctx context.Context) (*domain.Catalog, error) {
	record := domain.CatalogRecord{
		DayStart: s.dayStart.String(),
		DayEnd:   s.dayEnd.String(),
		Tasks:    make([]domain.RecurringTaskRecord, 0),
	}

	err := s.db.QueryRowContext(ctx,
		`SELECT day_start, day_end FROM day_bounds WHERE id = 1`,
	).Scan(&record.DayStart, &record.DayEnd)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, s.wrap(err, domain.ErrStoreReadFailed)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT name, recur, usual_start, usual_end FROM recurring_tasks ORDER BY position`,
	)
	if err != nil {
		return nil, s.wrap(err, domain.ErrStoreReadFailed)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			task  domain.RecurringTaskRecord
			recur string
		)
		if err := rows.Scan(&task.Name, &recur, &task.UsualStart, &task.UsualEnd); err != nil {
			return nil, s.wrap(err, domain.ErrStoreUnmarshalFailed)
		}
		task.Recur = splitRecur(recur)
		record.Tasks = append(record.Tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, s.wrap(err, domain.ErrStoreReadFailed)
	}

	catalog, err := domain.CatalogFromRecord(record)
	if err != nil {
		return nil, zerr.With(err, "path", s.path)
	}
	return catalog, nil
}

// Save replaces the stored catalog in a single transaction.
func (s *SQLiteStore) Save(ctx context.Context, catalog *domain.Catalog) error {
	record := catalog.Record()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return s.wrap(err, domain.ErrStoreWriteFailed)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO day_bounds(id, day_start, day_end) VALUES(1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET day_start = excluded.day_start, day_end = excluded.day_end`,
		record.DayStart, record.DayEnd,
	); err != nil {
		return s.wrap(err, domain.ErrStoreWriteFailed)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM recurring_tasks`); err != nil {
		return s.wrap(err, domain.ErrStoreWriteFailed)
	}

	for i, task := range record.Tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO recurring_tasks(position, name, recur, usual_start, usual_end) VALUES(?, ?, ?, ?, ?)`,
			i, task.Name, strings.Join(task.Recur, recurSeparator), task.UsualStart, task.UsualEnd,
		); err != nil {
			return zerr.With(s.wrap(err, domain.ErrStoreWriteFailed), "task", task.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return s.wrap(err, domain.ErrStoreWriteFailed)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) wrap(err, sentinel error) error {
	return zerr.With(zerr.Wrap(err, sentinel.Error()), "path", s.path)
}

func splitRecur(recur string) []string {
	if recur == "" {
		return make([]string, 0)
	}
	return strings.Split(recur, recurSeparator)
}
