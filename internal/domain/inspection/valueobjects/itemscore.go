package valueobjects

import "fmt"

// ItemScore is the per-item result of a checklist line. Items start unscored
// and receive their score as part of completing the inspection.
type ItemScore string

const (
	ScorePass ItemScore = "pass"
	ScoreFail ItemScore = "fail"
	ScoreNA   ItemScore = "na"

	// ScoreUnset is the zero value for an item that has not been scored yet.
	ScoreUnset ItemScore = ""
)

var validItemScores = map[ItemScore]bool{
	ScorePass: true,
	ScoreFail: true,
	ScoreNA:   true,
}

func (s ItemScore) String() string {
	return string(s)
}

func (s ItemScore) IsValid() bool {
	return validItemScores[s]
}

func (s ItemScore) IsSet() bool {
	return s != ScoreUnset
}

func (s ItemScore) IsPass() bool {
	return s == ScorePass
}

func (s ItemScore) IsFail() bool {
	return s == ScoreFail
}

func (s ItemScore) IsNA() bool {
	return s == ScoreNA
}

func NewItemScore(s string) (ItemScore, error) {
	score := ItemScore(s)
	if !score.IsValid() {
		return "", fmt.Errorf("invalid item score: %s", s)
	}
	return score, nil
}

const (
	// MinItemRating and MaxItemRating bound the optional 1-5 per-item rating.
	MinItemRating = 1
	MaxItemRating = 5
)

// ValidateItemRating checks an optional 1-5 item rating. A nil rating is valid;
// ratings are supplementary to the pass/fail/na score.
func ValidateItemRating(rating *int) error {
	if rating == nil {
		return nil
	}
	if *rating < MinItemRating || *rating > MaxItemRating {
		return fmt.Errorf("item rating must be between %d and %d, got %d", MinItemRating, MaxItemRating, *rating)
	}
	return nil
}
