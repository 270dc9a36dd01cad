package enums

import "fmt"

// ChangeAction identifies what kind of mutation a changelog entry records.
type ChangeAction string

const (
	ChangeActionCreate       ChangeAction = "create"
	ChangeActionUpdate       ChangeAction = "update"
	ChangeActionDelete       ChangeAction = "delete"
	ChangeActionStatusChange ChangeAction = "status_change"
	ChangeActionRecall       ChangeAction = "recall"
)

var validChangeActions = []ChangeAction{
	ChangeActionCreate,
	ChangeActionUpdate,
	ChangeActionDelete,
	ChangeActionStatusChange,
	ChangeActionRecall,
}

// String implements fmt.Stringer.
func (a ChangeAction) String() string {
	return string(a)
}

// IsValid reports whether the value is a known ChangeAction.
func (a ChangeAction) IsValid() bool {
	for _, candidate := range validChangeActions {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseChangeAction converts raw input into a ChangeAction.
func ParseChangeAction(value string) (ChangeAction, error) {
	for _, candidate := range validChangeActions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid change action %q", value)
}
