package migrations

import (
	"cmp"
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strconv"
	"strings"
)

//go:embed *.sql
var migrationsFS embed.FS

const schemaTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
)`

// Migration is one embedded NNNNNN_name.up.sql file.
type Migration struct {
	Version int
	Name    string
	Up      string
}

// RunMigrations applies every migration not yet recorded, lowest version first.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	all, applied, err := state(ctx, db)
	if err != nil {
		return err
	}
	for _, m := range all {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

func state(ctx context.Context, db *sql.DB) ([]Migration, map[int]bool, error) {
	if _, err := db.ExecContext(ctx, schemaTable); err != nil {
		return nil, nil, fmt.Errorf("create migrations table: %w", err)
	}
	all, err := LoadMigrations()
	if err != nil {
		return nil, nil, fmt.Errorf("load migrations: %w", err)
	}
	applied, err := AppliedVersions(ctx, db)
	if err != nil {
		return nil, nil, fmt.Errorf("read applied migrations: %w", err)
	}
	return all, applied, nil
}

// LoadMigrations returns the embedded migrations sorted by version.
// Files without a numeric prefix are ignored.
func LoadMigrations() ([]Migration, error) {
	ups, err := fs.Glob(migrationsFS, "*.up.sql")
	if err != nil {
		return nil, err
	}

	var out []Migration
	for _, file := range ups {
		version, name := parseFilename(file)
		if version == 0 {
			continue
		}
		up, err := migrationsFS.ReadFile(file)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Version: version, Name: name, Up: string(up)})
	}

	slices.SortFunc(out, func(a, b Migration) int { return cmp.Compare(a.Version, b.Version) })
	return out, nil
}

// AppliedVersions reads the recorded versions.
func AppliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := map[int]bool{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// apply runs m.Up and records its version in one transaction.
func apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", m.Version); err != nil {
		return err
	}
	return tx.Commit()
}

// parseFilename splits "000001_create_kv_store.up.sql" into 1 and
// "create_kv_store". It returns 0 when the prefix is not a positive number.
func parseFilename(filename string) (int, string) {
	base := strings.TrimSuffix(filename, ".up.sql")
	prefix, name, _ := strings.Cut(base, "_")
	version, err := strconv.Atoi(prefix)
	if err != nil || version <= 0 {
		return 0, ""
	}
	return version, name
}
