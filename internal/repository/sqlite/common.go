package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"todo-manager/internal/errors"
)

// dbError classifies a driver error. A hit deadline becomes a timeout so
// callers can tell a slow disk from a broken one.
func dbError(operation string, err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) {
		timeoutErr := errors.NewTimeoutError(operation, nil)
		timeoutErr.Cause = err
		return timeoutErr
	}
	return errors.NewDatabaseError(operation, err)
}

// lookupError maps sql.ErrNoRows to a not found error for key.
func lookupError(operation, key string, err error) error {
	if stderrors.Is(err, sql.ErrNoRows) {
		return errors.NewNotFoundError("key", key)
	}
	return dbError(operation, err)
}

// withTimeout bounds ctx by d when d is positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func queryOne[T any](ctx context.Context, db *sql.DB, key, query string, scan func(Scanner) (*T, error), args ...interface{}) (*T, error) {
	v, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, lookupError("get "+key, key, err)
	}
	return v, nil
}
