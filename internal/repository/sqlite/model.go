package sqlite

import "time"

// Entry is one row of the key-value store. Value is opaque to the
// repository; callers decide its encoding.
type Entry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}
