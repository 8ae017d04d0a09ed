package valueobjects

import "fmt"

// OverallRating is the categorical banding of an inspection's overall score.
type OverallRating string

const (
	RatingExcellent OverallRating = "excellent"
	RatingGood      OverallRating = "good"
	RatingFair      OverallRating = "fair"
	RatingPoor      OverallRating = "poor"
	RatingCritical  OverallRating = "critical"
)

var validOverallRatings = map[OverallRating]bool{
	RatingExcellent: true,
	RatingGood:      true,
	RatingFair:      true,
	RatingPoor:      true,
	RatingCritical:  true,
}

// RatingBand maps a minimum score to a rating label. Bands are evaluated in
// order; the first band whose MinScore the score reaches wins.
type RatingBand struct {
	Rating   OverallRating
	MinScore int
}

// DefaultRatingBands is the authoritative cut-point table for overall ratings.
// The numbers are a product decision pending sign-off; keep them here rather
// than inlining so an override stays a one-line change.
//
// TODO(product): confirm the poor/critical boundary with operations before the
// client-facing report ships.
var DefaultRatingBands = []RatingBand{
	{Rating: RatingExcellent, MinScore: 90},
	{Rating: RatingGood, MinScore: 75},
	{Rating: RatingFair, MinScore: 60},
	{Rating: RatingPoor, MinScore: 40},
	{Rating: RatingCritical, MinScore: 0},
}

func (r OverallRating) String() string {
	return string(r)
}

func (r OverallRating) IsValid() bool {
	return validOverallRatings[r]
}

func NewOverallRating(s string) (OverallRating, error) {
	rating := OverallRating(s)
	if !rating.IsValid() {
		return "", fmt.Errorf("invalid overall rating: %s", s)
	}
	return rating, nil
}

// RatingForScore bands a 0-100 score using DefaultRatingBands.
func RatingForScore(score int) OverallRating {
	return RatingForScoreWithBands(score, DefaultRatingBands)
}

// RatingForScoreWithBands bands a score against a custom cut-point table.
// The table must be sorted by MinScore descending and end with a zero band.
func RatingForScoreWithBands(score int, bands []RatingBand) OverallRating {
	for _, band := range bands {
		if score >= band.MinScore {
			return band.Rating
		}
	}
	return RatingCritical
}
