package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
)

// storedInspection builds an inspection the way the repository would return
// it: IDs and number assigned, in the given status.
func storedInspection(t *testing.T, status vo.InspectionStatus) *inspection.Inspection {
	t.Helper()

	scores := map[vo.InspectionStatus][2]vo.ItemScore{
		vo.StatusScheduled:  {vo.ScoreUnset, vo.ScoreUnset},
		vo.StatusInProgress: {vo.ScoreUnset, vo.ScoreUnset},
		vo.StatusCompleted:  {vo.ScorePass, vo.ScoreFail},
		vo.StatusCanceled:   {vo.ScoreUnset, vo.ScoreUnset},
	}[status]

	kitchen, err := inspection.ReconstructItem(1, 100, "Kitchen", "Floors mopped and degreased", 2, scores[0], nil, "")
	require.NoError(t, err)
	restroom, err := inspection.ReconstructItem(2, 100, "Restroom", "Fixtures sanitized", 1, scores[1], nil, "")
	require.NoError(t, err)

	now := time.Now()
	var (
		score       *int
		rating      *vo.OverallRating
		completedAt *time.Time
		canceledAt  *time.Time
	)
	if status == vo.StatusCompleted {
		s := 67
		r := vo.RatingFair
		score = &s
		rating = &r
		completedAt = &now
	}
	if status == vo.StatusCanceled {
		canceledAt = &now
	}

	insp, err := inspection.ReconstructInspection(
		100, "INS-20260831-0001", status,
		10, 20, now,
		nil, nil, nil, nil,
		"", "", score, rating,
		[]*inspection.Item{kitchen, restroom},
		1, now, now,
		nil, completedAt, canceledAt,
	)
	require.NoError(t, err)
	return insp
}
