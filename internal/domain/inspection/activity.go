package inspection

import (
	"fmt"
	"time"

	vo "luster/internal/domain/inspection/valueobjects"
)

// Activity is one append-only audit entry. A nil actor means the system wrote
// the entry. Metadata carries a small closed set of scalar keys per action
// (see valueobjects.ActivityAction); it is display-only.
type Activity struct {
	id           uint
	inspectionID uint
	action       vo.ActivityAction
	actorID      *uint
	metadata     map[string]any
	createdAt    time.Time
}

func NewActivity(
	inspectionID uint,
	action vo.ActivityAction,
	actorID *uint,
	metadata map[string]any,
) (*Activity, error) {
	if inspectionID == 0 {
		return nil, fmt.Errorf("inspection ID is required")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid activity action: %s", action)
	}

	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Activity{
		inspectionID: inspectionID,
		action:       action,
		actorID:      actorID,
		metadata:     metadata,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructActivity(
	id uint,
	inspectionID uint,
	action vo.ActivityAction,
	actorID *uint,
	metadata map[string]any,
	createdAt time.Time,
) (*Activity, error) {
	if id == 0 {
		return nil, fmt.Errorf("activity ID cannot be zero")
	}
	if !action.IsValid() {
		return nil, fmt.Errorf("invalid activity action: %s", action)
	}

	if metadata == nil {
		metadata = make(map[string]any)
	}

	return &Activity{
		id:           id,
		inspectionID: inspectionID,
		action:       action,
		actorID:      actorID,
		metadata:     metadata,
		createdAt:    createdAt,
	}, nil
}

func (a *Activity) ID() uint {
	return a.id
}

func (a *Activity) InspectionID() uint {
	return a.inspectionID
}

func (a *Activity) Action() vo.ActivityAction {
	return a.action
}

func (a *Activity) ActorID() *uint {
	return a.actorID
}

func (a *Activity) Metadata() map[string]any {
	metadataCopy := make(map[string]any, len(a.metadata))
	for k, v := range a.metadata {
		metadataCopy[k] = v
	}
	return metadataCopy
}

func (a *Activity) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Activity) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("activity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("activity ID cannot be zero")
	}
	a.id = id
	return nil
}
