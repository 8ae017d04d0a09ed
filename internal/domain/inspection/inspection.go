package inspection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "luster/internal/domain/inspection/valueobjects"
)

// Sentinel errors used by the use-case layer to distinguish lifecycle
// violations from malformed input.
var (
	// ErrInvalidTransition marks operations that are not legal from the
	// inspection's current status.
	ErrInvalidTransition = errors.New("invalid inspection state transition")
	// ErrUnscoredItem marks a completion attempt that left an item without
	// a score.
	ErrUnscoredItem = errors.New("item missing score")
	// ErrNoFailedItems marks a re-inspection attempt on an inspection that
	// has nothing to re-inspect.
	ErrNoFailedItems = errors.New("inspection has no failed items")
)

// ItemResult is one item's score entry supplied to Complete.
type ItemResult struct {
	Score  vo.ItemScore
	Rating *int
	Notes  string
}

// Inspection is the aggregate root for a scored quality audit. It exclusively
// owns its items; corrective actions, sign-offs and activities reference it by
// ID and are persisted through their own repositories inside the same
// transaction. The version field backs optimistic concurrency: a racing writer
// loses with a conflict instead of silently overwriting.
type Inspection struct {
	id               uint
	number           string
	status           vo.InspectionStatus
	facilityID       uint
	inspectorID      uint
	scheduledDate    time.Time
	jobID            *uint
	appointmentID    *uint
	templateID       *uint
	reinspectionOfID *uint
	notes            string
	summary          string
	overallScore     *int
	overallRating    *vo.OverallRating
	items            []*Item
	version          int
	createdAt        time.Time
	updatedAt        time.Time
	startedAt        *time.Time
	completedAt      *time.Time
	canceledAt       *time.Time
}

func NewInspection(
	facilityID uint,
	inspectorID uint,
	scheduledDate time.Time,
	items []*Item,
) (*Inspection, error) {
	if facilityID == 0 {
		return nil, fmt.Errorf("facility ID is required")
	}
	if inspectorID == 0 {
		return nil, fmt.Errorf("inspector ID is required")
	}
	if scheduledDate.IsZero() {
		return nil, fmt.Errorf("scheduled date is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("at least one checklist item is required")
	}

	now := time.Now()
	return &Inspection{
		status:        vo.StatusScheduled,
		facilityID:    facilityID,
		inspectorID:   inspectorID,
		scheduledDate: scheduledDate,
		items:         items,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructInspection(
	id uint,
	number string,
	status vo.InspectionStatus,
	facilityID uint,
	inspectorID uint,
	scheduledDate time.Time,
	jobID *uint,
	appointmentID *uint,
	templateID *uint,
	reinspectionOfID *uint,
	notes string,
	summary string,
	overallScore *int,
	overallRating *vo.OverallRating,
	items []*Item,
	version int,
	createdAt, updatedAt time.Time,
	startedAt, completedAt, canceledAt *time.Time,
) (*Inspection, error) {
	if id == 0 {
		return nil, fmt.Errorf("inspection ID cannot be zero")
	}
	if number == "" {
		return nil, fmt.Errorf("inspection number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid inspection status: %s", status)
	}
	if (overallScore == nil) != (overallRating == nil) {
		return nil, fmt.Errorf("overall score and rating must both be set or both be null")
	}

	return &Inspection{
		id:               id,
		number:           number,
		status:           status,
		facilityID:       facilityID,
		inspectorID:      inspectorID,
		scheduledDate:    scheduledDate,
		jobID:            jobID,
		appointmentID:    appointmentID,
		templateID:       templateID,
		reinspectionOfID: reinspectionOfID,
		notes:            notes,
		summary:          summary,
		overallScore:     overallScore,
		overallRating:    overallRating,
		items:            items,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		startedAt:        startedAt,
		completedAt:      completedAt,
		canceledAt:       canceledAt,
	}, nil
}

func (i *Inspection) ID() uint {
	return i.id
}

func (i *Inspection) Number() string {
	return i.number
}

func (i *Inspection) Status() vo.InspectionStatus {
	return i.status
}

func (i *Inspection) FacilityID() uint {
	return i.facilityID
}

func (i *Inspection) InspectorID() uint {
	return i.inspectorID
}

func (i *Inspection) ScheduledDate() time.Time {
	return i.scheduledDate
}

func (i *Inspection) JobID() *uint {
	return i.jobID
}

func (i *Inspection) AppointmentID() *uint {
	return i.appointmentID
}

func (i *Inspection) TemplateID() *uint {
	return i.templateID
}

func (i *Inspection) ReinspectionOfID() *uint {
	return i.reinspectionOfID
}

func (i *Inspection) Notes() string {
	return i.notes
}

func (i *Inspection) Summary() string {
	return i.summary
}

func (i *Inspection) OverallScore() *int {
	return i.overallScore
}

func (i *Inspection) OverallRating() *vo.OverallRating {
	return i.overallRating
}

func (i *Inspection) Items() []*Item {
	itemsCopy := make([]*Item, len(i.items))
	copy(itemsCopy, i.items)
	return itemsCopy
}

func (i *Inspection) Version() int {
	return i.version
}

func (i *Inspection) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Inspection) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Inspection) StartedAt() *time.Time {
	return i.startedAt
}

func (i *Inspection) CompletedAt() *time.Time {
	return i.completedAt
}

func (i *Inspection) CanceledAt() *time.Time {
	return i.canceledAt
}

func (i *Inspection) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("inspection ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("inspection ID cannot be zero")
	}
	i.id = id
	for _, item := range i.items {
		item.setInspectionID(id)
	}
	return nil
}

func (i *Inspection) SetNumber(number string) error {
	if i.number != "" {
		return fmt.Errorf("inspection number is already set")
	}
	if number == "" {
		return fmt.Errorf("inspection number cannot be empty")
	}
	i.number = number
	return nil
}

// SetJobContext attaches the optional job/appointment/template references.
// Only meaningful before the first save.
func (i *Inspection) SetJobContext(jobID, appointmentID, templateID *uint) {
	i.jobID = jobID
	i.appointmentID = appointmentID
	i.templateID = templateID
}

func (i *Inspection) SetNotes(notes string) {
	i.notes = notes
	i.updatedAt = time.Now()
}

func (i *Inspection) markReinspectionOf(sourceID uint) {
	i.reinspectionOfID = &sourceID
}

// Start moves a scheduled inspection into progress.
func (i *Inspection) Start() error {
	if !i.status.IsScheduled() {
		return fmt.Errorf("%w: cannot start inspection in status %s", ErrInvalidTransition, i.status)
	}

	now := time.Now()
	i.status = vo.StatusInProgress
	i.startedAt = &now
	i.updatedAt = now
	i.version++
	return nil
}

// Complete applies every item's score entry, then computes the overall score
// and rating. Every item must receive a score; a completion that leaves any
// item unscored is rejected as a whole, with no partial writes. When every
// item is n/a, the inspection still completes but carries no score or rating.
func (i *Inspection) Complete(summary string, results map[uint]ItemResult) error {
	if !i.status.CanTransitionTo(vo.StatusCompleted) {
		return fmt.Errorf("%w: cannot complete inspection in status %s", ErrInvalidTransition, i.status)
	}

	for _, item := range i.items {
		result, ok := results[item.ID()]
		if !ok {
			return fmt.Errorf("%w: item %d (%s)", ErrUnscoredItem, item.ID(), item.Text())
		}
		if !result.Score.IsValid() {
			return fmt.Errorf("invalid score %q for item %d", result.Score, item.ID())
		}
		if err := vo.ValidateItemRating(result.Rating); err != nil {
			return err
		}
	}

	for _, item := range i.items {
		result := results[item.ID()]
		if err := item.setResult(result.Score, result.Rating, result.Notes); err != nil {
			return err
		}
	}

	i.overallScore = ComputeOverallScore(i.items)
	if i.overallScore != nil {
		rating := vo.RatingForScore(*i.overallScore)
		i.overallRating = &rating
	} else {
		i.overallRating = nil
	}

	now := time.Now()
	i.status = vo.StatusCompleted
	i.summary = strings.TrimSpace(summary)
	i.completedAt = &now
	i.updatedAt = now
	i.version++
	return nil
}

// Cancel terminates the inspection from scheduled or in_progress. Existing
// corrective actions are left untouched: they are historical record, and
// cascading their cancellation would erase it.
func (i *Inspection) Cancel(reason string) error {
	if !i.status.CanTransitionTo(vo.StatusCanceled) {
		return fmt.Errorf("%w: cannot cancel inspection in status %s", ErrInvalidTransition, i.status)
	}

	now := time.Now()
	i.status = vo.StatusCanceled
	if reason = strings.TrimSpace(reason); reason != "" {
		if i.notes != "" {
			i.notes += "\n"
		}
		i.notes += "Canceled: " + reason
	}
	i.canceledAt = &now
	i.updatedAt = now
	i.version++
	return nil
}

// FailedItems returns the items scored fail.
func (i *Inspection) FailedItems() []*Item {
	failed := make([]*Item, 0)
	for _, item := range i.items {
		if item.Score().IsFail() {
			failed = append(failed, item)
		}
	}
	return failed
}

func (i *Inspection) HasFailedItems() bool {
	return len(i.FailedItems()) > 0
}

// CanCreateCorrectiveAction reports whether remediation items may still be
// raised. Only cancellation closes that door; completed inspections accept
// corrective actions indefinitely.
func (i *Inspection) CanCreateCorrectiveAction() bool {
	return !i.status.IsCanceled()
}

// SpawnReinspection creates the follow-up inspection covering only the items
// that failed. Pass/na items are not carried over: the re-inspection verifies
// remediation, not the whole facility. The source is only valid when
// completed with at least one failed item.
func (i *Inspection) SpawnReinspection(scheduledDate time.Time) (*Inspection, error) {
	if !i.status.IsCompleted() {
		return nil, fmt.Errorf("%w: cannot re-inspect inspection in status %s", ErrInvalidTransition, i.status)
	}

	failed := i.FailedItems()
	if len(failed) == 0 {
		return nil, ErrNoFailedItems
	}

	items := make([]*Item, 0, len(failed))
	for _, src := range failed {
		item, err := NewItem(src.Category(), src.Text(), src.Weight())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if scheduledDate.IsZero() {
		scheduledDate = time.Now()
	}

	reinspection, err := NewInspection(i.facilityID, i.inspectorID, scheduledDate, items)
	if err != nil {
		return nil, err
	}

	reinspection.SetJobContext(i.jobID, i.appointmentID, i.templateID)
	reinspection.markReinspectionOf(i.id)
	return reinspection, nil
}
