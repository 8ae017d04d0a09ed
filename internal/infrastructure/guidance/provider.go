package guidance

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"luster/internal/infrastructure/persistence/models"
)

// DBProvider reads area-guidance hints straight from the database. It is
// usually wrapped by CachedProvider; on its own it hits the table per lookup.
type DBProvider struct {
	db *gorm.DB
}

func NewDBProvider(db *gorm.DB) *DBProvider {
	return &DBProvider{db: db}
}

func (p *DBProvider) ForCategories(ctx context.Context, categories []string) (map[string][]string, error) {
	if len(categories) == 0 {
		return map[string][]string{}, nil
	}

	var rows []models.AreaGuidanceModel
	if err := p.db.WithContext(ctx).
		Where("category IN ?", categories).
		Order("category ASC, position ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load area guidance: %w", err)
	}

	guidance := make(map[string][]string)
	for _, row := range rows {
		guidance[row.Category] = append(guidance[row.Category], row.Hint)
	}
	return guidance, nil
}
