package sqlite

import (
	"context"
	"database/sql"
	"time"

	"todo-manager/internal/errors"
	"todo-manager/internal/logging"
	"todo-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository is a flat string key-value store.
type Repository interface {
	// PutValue stores entry.Value under entry.Key, replacing any previous value.
	PutValue(ctx context.Context, entry *Entry) error
	// GetValue returns the entry for key or a not_found error.
	GetValue(ctx context.Context, key string) (*Entry, error)

	Close() error
}

// Options tunes a SQLiteRepository.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db   *sql.DB
	opts Options
	now  func() time.Time
}

// New creates a new SQLite repository instance without timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens the database at dbPath and applies pending migrations.
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// ":memory:" databases are per connection
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(context.Background(), db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("opened key-value store at %s", dbPath)
	return &SQLiteRepository{db: db, opts: opts, now: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// PutValue upserts a value and stamps its update time
func (r *SQLiteRepository) PutValue(ctx context.Context, entry *Entry) error {
	ctx, cancel := withTimeout(ctx, r.opts.WriteTimeout)
	defer cancel()

	entry.UpdatedAt = r.now().UTC().Truncate(time.Second)
	query := `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, entry.Key, entry.Value, formatTime(entry.UpdatedAt)); err != nil {
		return dbError("put "+entry.Key, err)
	}
	return nil
}

// GetValue retrieves the entry stored under key
func (r *SQLiteRepository) GetValue(ctx context.Context, key string) (*Entry, error) {
	ctx, cancel := withTimeout(ctx, r.opts.QueryTimeout)
	defer cancel()

	query := `SELECT key, value, updated_at FROM kv_store WHERE key = ?`
	return queryOne(ctx, r.db, key, query, ScanEntry, key)
}
