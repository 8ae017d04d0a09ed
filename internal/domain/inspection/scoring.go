package inspection

import (
	"math"

	vo "luster/internal/domain/inspection/valueobjects"
)

// ComputeOverallScore reduces item results to a weighted 0-100 score.
// A passed item contributes its weight to numerator and denominator, a failed
// item only to the denominator, and n/a items to neither. Returns nil when
// every item is n/a: there is nothing to score, and the inspection completes
// without a score or rating.
func ComputeOverallScore(items []*Item) *int {
	numerator := 0
	denominator := 0

	for _, item := range items {
		switch item.Score() {
		case vo.ScorePass:
			numerator += item.Weight()
			denominator += item.Weight()
		case vo.ScoreFail:
			denominator += item.Weight()
		}
	}

	if denominator == 0 {
		return nil
	}

	score := int(math.Round(100 * float64(numerator) / float64(denominator)))
	return &score
}

// CategoryRollup is the display aggregate for all items sharing a category.
// The stored unit of truth stays per-item; the rollup only summarizes.
type CategoryRollup struct {
	Category string
	// Score follows precedence fail > pass > na across the category's
	// scored items; unset when no item in the category is scored.
	Score vo.ItemScore
	// Rating is the arithmetic mean of rated items, rounded to one decimal.
	// Nil when no item carries a rating.
	Rating *float64
	Items  int
}

// RollupByCategory aggregates items per category, preserving first-seen
// category order.
func RollupByCategory(items []*Item) []CategoryRollup {
	order := make([]string, 0)
	grouped := make(map[string][]*Item)

	for _, item := range items {
		if _, ok := grouped[item.Category()]; !ok {
			order = append(order, item.Category())
		}
		grouped[item.Category()] = append(grouped[item.Category()], item)
	}

	rollups := make([]CategoryRollup, 0, len(order))
	for _, category := range order {
		rollups = append(rollups, rollupCategory(category, grouped[category]))
	}
	return rollups
}

func rollupCategory(category string, items []*Item) CategoryRollup {
	rollup := CategoryRollup{
		Category: category,
		Score:    vo.ScoreUnset,
		Items:    len(items),
	}

	ratingSum := 0
	ratingCount := 0

	for _, item := range items {
		switch item.Score() {
		case vo.ScoreFail:
			rollup.Score = vo.ScoreFail
		case vo.ScorePass:
			if rollup.Score != vo.ScoreFail {
				rollup.Score = vo.ScorePass
			}
		case vo.ScoreNA:
			if rollup.Score == vo.ScoreUnset {
				rollup.Score = vo.ScoreNA
			}
		}

		if item.Rating() != nil {
			ratingSum += *item.Rating()
			ratingCount++
		}
	}

	if ratingCount > 0 {
		mean := math.Round(10*float64(ratingSum)/float64(ratingCount)) / 10
		rollup.Rating = &mean
	}

	return rollup
}
