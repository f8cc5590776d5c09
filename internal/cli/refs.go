package cli

import (
	"strconv"

	"todo-manager/internal/domain"
	"todo-manager/internal/errors"
)

// rowRef addresses one row of the list: a section and a zero-based index
type rowRef struct {
	priority domain.Priority
	index    int
}

// parseRowRef parses "<section> <row>" where row is 1-based as printed by list
func parseRowRef(section, row string) (rowRef, error) {
	priority, err := domain.ParsePriority(section)
	if err != nil {
		return rowRef{}, errors.NewInvalidInputError("section", section, "must be important or normal")
	}

	n, err := strconv.Atoi(row)
	if err != nil || n < 1 {
		return rowRef{}, errors.NewInvalidInputError("row", row, "must be a positive row number")
	}

	return rowRef{priority: priority, index: n - 1}, nil
}

// errUsage reports a malformed invocation
func errUsage(usage string) error {
	return errors.NewInvalidInputError("arguments", "", "usage: "+usage)
}
