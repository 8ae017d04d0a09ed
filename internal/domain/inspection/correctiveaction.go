package inspection

import (
	"fmt"
	"strings"
	"time"

	vo "luster/internal/domain/inspection/valueobjects"
)

// CorrectiveAction is a remediation task raised from a failed checklist item
// or a general finding. It references its originating item for lookup only and
// runs its own status workflow independent of the parent inspection's state.
type CorrectiveAction struct {
	id           uint
	inspectionID uint
	itemID       *uint
	title        string
	description  string
	severity     vo.Severity
	status       vo.ActionStatus
	dueDate      *time.Time
	createdBy    uint
	verifiedBy   *uint
	verifiedAt   *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCorrectiveAction(
	inspectionID uint,
	itemID *uint,
	title string,
	description string,
	severity vo.Severity,
	dueDate *time.Time,
	createdBy uint,
) (*CorrectiveAction, error) {
	title = strings.TrimSpace(title)

	if inspectionID == 0 {
		return nil, fmt.Errorf("inspection ID is required")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()
	return &CorrectiveAction{
		inspectionID: inspectionID,
		itemID:       itemID,
		title:        title,
		description:  description,
		severity:     severity,
		status:       vo.ActionStatusOpen,
		dueDate:      dueDate,
		createdBy:    createdBy,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructCorrectiveAction(
	id uint,
	inspectionID uint,
	itemID *uint,
	title string,
	description string,
	severity vo.Severity,
	status vo.ActionStatus,
	dueDate *time.Time,
	createdBy uint,
	verifiedBy *uint,
	verifiedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*CorrectiveAction, error) {
	if id == 0 {
		return nil, fmt.Errorf("corrective action ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &CorrectiveAction{
		id:           id,
		inspectionID: inspectionID,
		itemID:       itemID,
		title:        title,
		description:  description,
		severity:     severity,
		status:       status,
		dueDate:      dueDate,
		createdBy:    createdBy,
		verifiedBy:   verifiedBy,
		verifiedAt:   verifiedAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (a *CorrectiveAction) ID() uint {
	return a.id
}

func (a *CorrectiveAction) InspectionID() uint {
	return a.inspectionID
}

func (a *CorrectiveAction) ItemID() *uint {
	return a.itemID
}

func (a *CorrectiveAction) Title() string {
	return a.title
}

func (a *CorrectiveAction) Description() string {
	return a.description
}

func (a *CorrectiveAction) Severity() vo.Severity {
	return a.severity
}

func (a *CorrectiveAction) Status() vo.ActionStatus {
	return a.status
}

func (a *CorrectiveAction) DueDate() *time.Time {
	return a.dueDate
}

func (a *CorrectiveAction) CreatedBy() uint {
	return a.createdBy
}

func (a *CorrectiveAction) VerifiedBy() *uint {
	return a.verifiedBy
}

func (a *CorrectiveAction) VerifiedAt() *time.Time {
	return a.verifiedAt
}

func (a *CorrectiveAction) CreatedAt() time.Time {
	return a.createdAt
}

func (a *CorrectiveAction) UpdatedAt() time.Time {
	return a.updatedAt
}

func (a *CorrectiveAction) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("corrective action ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("corrective action ID cannot be zero")
	}
	a.id = id
	return nil
}

// ChangeStatus moves the action along the workflow edge set. Verification must
// go through Verify so the verifier identity is stamped.
func (a *CorrectiveAction) ChangeStatus(newStatus vo.ActionStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	if a.status == newStatus {
		return nil
	}

	if !a.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition corrective action from %s to %s", a.status, newStatus)
	}

	a.status = newStatus
	a.updatedAt = time.Now()

	if newStatus == vo.ActionStatusOpen {
		// Reopen clears any previous verification stamp.
		a.verifiedBy = nil
		a.verifiedAt = nil
	}

	return nil
}

// Verify is the distinguished verified transition: it stamps who verified and
// when, on top of the normal edge validation.
func (a *CorrectiveAction) Verify(verifierID uint) error {
	if verifierID == 0 {
		return fmt.Errorf("verifier ID is required")
	}

	if err := a.ChangeStatus(vo.ActionStatusVerified); err != nil {
		return err
	}

	now := time.Now()
	a.verifiedBy = &verifierID
	a.verifiedAt = &now
	return nil
}

// UpdateDetails patches title/description/severity/due date. Detail edits are
// permitted at any status; nil pointers leave the field unchanged.
func (a *CorrectiveAction) UpdateDetails(title, description *string, severity *vo.Severity, dueDate *time.Time, clearDueDate bool) error {
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return fmt.Errorf("title cannot be empty")
		}
		if len(trimmed) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		a.title = trimmed
	}

	if description != nil {
		if len(*description) > 5000 {
			return fmt.Errorf("description exceeds maximum length of 5000 characters")
		}
		a.description = *description
	}

	if severity != nil {
		if !severity.IsValid() {
			return fmt.Errorf("invalid severity")
		}
		a.severity = *severity
	}

	if clearDueDate {
		a.dueDate = nil
	} else if dueDate != nil {
		a.dueDate = dueDate
	}

	a.updatedAt = time.Now()
	return nil
}
