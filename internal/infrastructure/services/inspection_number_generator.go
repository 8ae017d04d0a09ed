package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"
)

// InspectionNumberGenerator issues the human-facing inspection numbers
// (INS-YYYYMMDD-NNNN). The per-day sequence is seeded from the database once
// and advanced in memory behind a mutex.
type InspectionNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewInspectionNumberGenerator(db *gorm.DB) *InspectionNumberGenerator {
	return &InspectionNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

func (g *InspectionNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateStr := time.Now().Format("20060102")
	prefix := fmt.Sprintf("INS-%s-", dateStr)

	seq, err := g.getNextSequence(ctx, dateStr)
	if err != nil {
		return "", err
	}

	number := fmt.Sprintf("%s%04d", prefix, seq)
	return number, nil
}

func (g *InspectionNumberGenerator) getNextSequence(ctx context.Context, dateStr string) (int, error) {
	if seq, ok := g.cache[dateStr]; ok {
		g.cache[dateStr] = seq + 1
		return seq + 1, nil
	}

	var maxNumber string
	prefix := fmt.Sprintf("INS-%s-%%", dateStr)

	err := g.db.WithContext(ctx).
		Table("inspections").
		Select("MAX(number)").
		Where("number LIKE ?", prefix).
		Scan(&maxNumber).Error

	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max inspection number: %w", err)
	}

	seq := 1
	if maxNumber != "" {
		fmt.Sscanf(maxNumber, prefix[:len(prefix)-1]+"%d", &seq)
		seq++
	}

	g.cache[dateStr] = seq
	return seq, nil
}
