package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "todo-manager/internal/errors"
)

func TestDBError(t *testing.T) {
	err := dbError("put tasks", errors.New("database is locked"))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
	assert.Contains(t, err.Error(), "put tasks")
	assert.Contains(t, err.Error(), "database is locked")

	err = dbError("get tasks", fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeTimeout))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLookupError(t *testing.T) {
	assert.True(t, apperrors.IsNotFound(lookupError("get tasks", "tasks", sql.ErrNoRows)))

	err := lookupError("get tasks", "tasks", errors.New("disk I/O error"))
	assert.False(t, apperrors.IsNotFound(err))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}
