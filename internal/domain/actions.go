package domain

// Action is a row gesture offered by the presentation layer.
type Action string

const (
	ActionComplete Action = "complete"
	ActionPlan     Action = "plan"
	ActionEdit     Action = "edit"
	ActionDelete   Action = "delete"
)

// SelectAction returns the action triggered by selecting a row: completing
// it while planned. ok is false when selection has no effect.
func SelectAction(t Task) (action Action, ok bool) {
	if t.Status == StatusPlanned {
		return ActionComplete, true
	}
	return "", false
}

// SwipeActions returns the trailing swipe actions for a row. Only completed
// tasks offer one: reopening them.
func SwipeActions(t Task) []Action {
	if t.Status == StatusCompleted {
		return []Action{ActionPlan}
	}
	return nil
}

// RowActions lists every action available for a row: the selection action,
// the swipe actions, then edit and delete which are always offered.
func RowActions(t Task) []Action {
	var actions []Action
	if a, ok := SelectAction(t); ok {
		actions = append(actions, a)
	}
	actions = append(actions, SwipeActions(t)...)
	return append(actions, ActionEdit, ActionDelete)
}
