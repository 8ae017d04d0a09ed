package valueobjects

import "fmt"

// ActivityAction tags one append-only audit entry. Every successful state
// transition writes exactly one entry; the log is display-only and never
// consulted by business rules.
//
// Recognized metadata keys per action:
//
//	created                      template_id, item_count
//	started                      (none)
//	completed                    overall_score, overall_rating, failed_items
//	canceled                     reason
//	corrective_action_created    action_id, severity, item_id
//	corrective_action_status_changed  action_id, from, to
//	corrective_action_verified   action_id, notes
//	signoff_created              signoff_id, signer_type
//	reinspection_created         reinspection_id, failed_items
type ActivityAction string

const (
	ActivityCreated                  ActivityAction = "created"
	ActivityStarted                  ActivityAction = "started"
	ActivityCompleted                ActivityAction = "completed"
	ActivityCanceled                 ActivityAction = "canceled"
	ActivityCorrectiveActionCreated  ActivityAction = "corrective_action_created"
	ActivityCorrectiveActionStatus   ActivityAction = "corrective_action_status_changed"
	ActivityCorrectiveActionVerified ActivityAction = "corrective_action_verified"
	ActivitySignoffCreated           ActivityAction = "signoff_created"
	ActivityReinspectionCreated      ActivityAction = "reinspection_created"
)

var validActivityActions = map[ActivityAction]bool{
	ActivityCreated:                  true,
	ActivityStarted:                  true,
	ActivityCompleted:                true,
	ActivityCanceled:                 true,
	ActivityCorrectiveActionCreated:  true,
	ActivityCorrectiveActionStatus:   true,
	ActivityCorrectiveActionVerified: true,
	ActivitySignoffCreated:           true,
	ActivityReinspectionCreated:      true,
}

func (a ActivityAction) String() string {
	return string(a)
}

func (a ActivityAction) IsValid() bool {
	return validActivityActions[a]
}

func NewActivityAction(s string) (ActivityAction, error) {
	action := ActivityAction(s)
	if !action.IsValid() {
		return "", fmt.Errorf("invalid activity action: %s", s)
	}
	return action, nil
}
