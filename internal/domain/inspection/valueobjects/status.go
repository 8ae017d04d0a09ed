package valueobjects

import "fmt"

type InspectionStatus string

const (
	StatusScheduled  InspectionStatus = "scheduled"
	StatusInProgress InspectionStatus = "in_progress"
	StatusCompleted  InspectionStatus = "completed"
	StatusCanceled   InspectionStatus = "canceled"
)

var validInspectionStatuses = map[InspectionStatus]bool{
	StatusScheduled:  true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCanceled:   true,
}

// inspectionStatusTransitions is the authoritative edge set for the inspection
// lifecycle. completed and canceled are terminal; re-opening a completed
// inspection is handled by spawning a re-inspection, never by transitioning back.
var inspectionStatusTransitions = map[InspectionStatus][]InspectionStatus{
	StatusScheduled: {
		StatusInProgress,
		StatusCompleted,
		StatusCanceled,
	},
	StatusInProgress: {
		StatusCompleted,
		StatusCanceled,
	},
	StatusCompleted: {},
	StatusCanceled:  {},
}

func (s InspectionStatus) String() string {
	return string(s)
}

func (s InspectionStatus) IsValid() bool {
	return validInspectionStatuses[s]
}

func (s InspectionStatus) CanTransitionTo(newStatus InspectionStatus) bool {
	allowed, ok := inspectionStatusTransitions[s]
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

func (s InspectionStatus) IsScheduled() bool {
	return s == StatusScheduled
}

func (s InspectionStatus) IsInProgress() bool {
	return s == StatusInProgress
}

func (s InspectionStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func (s InspectionStatus) IsCanceled() bool {
	return s == StatusCanceled
}

// IsTerminal reports whether no further lifecycle transition is possible.
func (s InspectionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

func NewInspectionStatus(s string) (InspectionStatus, error) {
	status := InspectionStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid inspection status: %s", s)
	}
	return status, nil
}
