package inspection

import (
	"fmt"
	"strings"

	vo "luster/internal/domain/inspection/valueobjects"
)

// Item is one checklist line owned by an Inspection. Items are copied from the
// template at creation time, so later template edits never touch them. They
// have no independent lifecycle and are deleted only with their inspection.
type Item struct {
	id           uint
	inspectionID uint
	category     string
	text         string
	weight       int
	score        vo.ItemScore
	rating       *int
	notes        string
}

func NewItem(category, text string, weight int) (*Item, error) {
	category = strings.TrimSpace(category)
	text = strings.TrimSpace(text)

	if category == "" {
		return nil, fmt.Errorf("item category is required")
	}
	if text == "" {
		return nil, fmt.Errorf("item text is required")
	}
	if weight < 1 {
		return nil, fmt.Errorf("item weight must be at least 1, got %d", weight)
	}

	return &Item{
		category: category,
		text:     text,
		weight:   weight,
		score:    vo.ScoreUnset,
	}, nil
}

func ReconstructItem(
	id uint,
	inspectionID uint,
	category string,
	text string,
	weight int,
	score vo.ItemScore,
	rating *int,
	notes string,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if weight < 1 {
		return nil, fmt.Errorf("item weight must be at least 1, got %d", weight)
	}
	if score.IsSet() && !score.IsValid() {
		return nil, fmt.Errorf("invalid item score: %s", score)
	}
	if err := vo.ValidateItemRating(rating); err != nil {
		return nil, err
	}

	return &Item{
		id:           id,
		inspectionID: inspectionID,
		category:     category,
		text:         text,
		weight:       weight,
		score:        score,
		rating:       rating,
		notes:        notes,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) InspectionID() uint {
	return i.inspectionID
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) Text() string {
	return i.text
}

func (i *Item) Weight() int {
	return i.weight
}

func (i *Item) Score() vo.ItemScore {
	return i.score
}

func (i *Item) Rating() *int {
	return i.rating
}

func (i *Item) Notes() string {
	return i.notes
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

func (i *Item) setInspectionID(inspectionID uint) {
	i.inspectionID = inspectionID
}

// setResult applies a score entry to the item. Only the aggregate calls this,
// as part of completing the inspection.
func (i *Item) setResult(score vo.ItemScore, rating *int, notes string) error {
	if !score.IsValid() {
		return fmt.Errorf("invalid item score: %s", score)
	}
	if err := vo.ValidateItemRating(rating); err != nil {
		return err
	}

	i.score = score
	i.rating = rating
	i.notes = notes
	return nil
}
