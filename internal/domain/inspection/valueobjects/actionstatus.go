package valueobjects

import "fmt"

// ActionStatus is the workflow state of a corrective action. The workflow is
// deliberately decoupled from the parent inspection's lifecycle: actions stay
// open even after the inspection is canceled so the remediation history
// survives as a record.
type ActionStatus string

const (
	ActionStatusOpen       ActionStatus = "open"
	ActionStatusInProgress ActionStatus = "in_progress"
	ActionStatusResolved   ActionStatus = "resolved"
	ActionStatusVerified   ActionStatus = "verified"
	ActionStatusCanceled   ActionStatus = "canceled"
)

var validActionStatuses = map[ActionStatus]bool{
	ActionStatusOpen:       true,
	ActionStatusInProgress: true,
	ActionStatusResolved:   true,
	ActionStatusVerified:   true,
	ActionStatusCanceled:   true,
}

// actionStatusTransitions: open → in_progress → resolved → verified, cancel
// from any non-terminal state, and a reopen edge back to open from
// resolved/verified/canceled.
var actionStatusTransitions = map[ActionStatus][]ActionStatus{
	ActionStatusOpen: {
		ActionStatusInProgress,
		ActionStatusCanceled,
	},
	ActionStatusInProgress: {
		ActionStatusResolved,
		ActionStatusCanceled,
	},
	ActionStatusResolved: {
		ActionStatusVerified,
		ActionStatusOpen,
		ActionStatusCanceled,
	},
	ActionStatusVerified: {
		ActionStatusOpen,
	},
	ActionStatusCanceled: {
		ActionStatusOpen,
	},
}

func (s ActionStatus) String() string {
	return string(s)
}

func (s ActionStatus) IsValid() bool {
	return validActionStatuses[s]
}

func (s ActionStatus) CanTransitionTo(newStatus ActionStatus) bool {
	allowed, ok := actionStatusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

func (s ActionStatus) IsOpen() bool {
	return s == ActionStatusOpen
}

func (s ActionStatus) IsInProgress() bool {
	return s == ActionStatusInProgress
}

func (s ActionStatus) IsResolved() bool {
	return s == ActionStatusResolved
}

func (s ActionStatus) IsVerified() bool {
	return s == ActionStatusVerified
}

func (s ActionStatus) IsCanceled() bool {
	return s == ActionStatusCanceled
}

func NewActionStatus(s string) (ActionStatus, error) {
	status := ActionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid corrective action status: %s", s)
	}
	return status, nil
}
