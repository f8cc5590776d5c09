package sqlite

import (
	"fmt"
	"time"
)

// updated_at is stored as RFC3339 text in UTC.
const timeLayout = time.RFC3339

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...interface{}) error
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// ScanEntry reads key, value and updated_at, in that column order.
func ScanEntry(scanner Scanner) (*Entry, error) {
	var (
		entry     Entry
		updatedAt string
	)
	if err := scanner.Scan(&entry.Key, &entry.Value, &updatedAt); err != nil {
		return nil, err
	}

	t, err := time.Parse(timeLayout, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at for key %q: %w", entry.Key, err)
	}
	entry.UpdatedAt = t
	return &entry, nil
}
