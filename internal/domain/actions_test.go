package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectAction(t *testing.T) {
	action, ok := SelectAction(Task{Title: "a", Status: StatusPlanned})
	assert.True(t, ok)
	assert.Equal(t, ActionComplete, action)

	_, ok = SelectAction(Task{Title: "a", Status: StatusCompleted})
	assert.False(t, ok)
}

func TestSwipeActions(t *testing.T) {
	assert.Empty(t, SwipeActions(Task{Title: "a", Status: StatusPlanned}))
	assert.Equal(t, []Action{ActionPlan}, SwipeActions(Task{Title: "a", Status: StatusCompleted}))
}

func TestRowActions(t *testing.T) {
	assert.Equal(t,
		[]Action{ActionComplete, ActionEdit, ActionDelete},
		RowActions(Task{Title: "a", Status: StatusPlanned}))
	assert.Equal(t,
		[]Action{ActionPlan, ActionEdit, ActionDelete},
		RowActions(Task{Title: "a", Status: StatusCompleted}))
}
