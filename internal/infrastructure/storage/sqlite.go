package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

// timeLayout is fixed-width so text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteStore keeps preferences and enquiries in a SQLite database whose
// schema is managed by golang-migrate.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens the database at path, creating it and applying pending
// migrations as needed.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, siteerrors.NewStorageError("open", "", errors.New("path is required"))
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, siteerrors.NewStorageError("open", path, fmt.Errorf("create directory: %w", err))
	}
	if err := migrateUp(path); err != nil {
		return nil, siteerrors.NewStorageError("migrate", path, err)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, siteerrors.NewStorageError("open", path, err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

func openDB(path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// migrateUp runs on its own connection because closing the migrator closes
// the database handle it was given.
func migrateUp(path string) error {
	db, err := openDB(path)
	if err != nil {
		return err
	}

	driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
	if err != nil {
		_ = db.Close()
		return err
	}
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		_ = db.Close()
		return err
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		_ = db.Close()
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Path returns the database file.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Get implements ports.StateStore.
func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, siteerrors.NewStorageError("get", key, err)
	}
	return value, true, nil
}

// Set implements ports.StateStore.
func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(timeLayout))
	if err != nil {
		return siteerrors.NewStorageError("set", key, err)
	}
	return nil
}

// Save implements ports.EnquiryRepository.
func (s *SQLiteStore) Save(ctx context.Context, e ports.Enquiry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO enquiries (id, name, email, package, message, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.Name, e.Email, e.Package, e.Message, e.SubmittedAt.UTC().Format(timeLayout))
	if err != nil {
		return siteerrors.NewStorageError("save enquiry", e.ID, err)
	}
	return nil
}

// List implements ports.EnquiryRepository.
func (s *SQLiteStore) List(ctx context.Context) ([]ports.Enquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, package, message, submitted_at
		FROM enquiries ORDER BY submitted_at, id`)
	if err != nil {
		return nil, siteerrors.NewStorageError("list enquiries", "", err)
	}
	defer rows.Close()

	var out []ports.Enquiry
	for rows.Next() {
		var (
			e  ports.Enquiry
			ts string
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Package, &e.Message, &ts); err != nil {
			return nil, siteerrors.NewStorageError("list enquiries", "", err)
		}
		if e.SubmittedAt, err = time.Parse(timeLayout, ts); err != nil {
			return nil, siteerrors.NewStorageError("list enquiries", e.ID, err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, siteerrors.NewStorageError("list enquiries", "", err)
	}
	return out, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ Backend = (*SQLiteStore)(nil)
