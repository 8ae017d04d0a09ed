package migration

import (
	"fmt"

	"gorm.io/gorm"

	"luster/internal/infrastructure/persistence/models"
	"luster/internal/shared/logger"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.InspectionModel{},
		&models.InspectionItemModel{},
		&models.CorrectiveActionModel{},
		&models.SignoffModel{},
		&models.ActivityModel{},
		&models.InspectionTemplateModel{},
		&models.InspectionTemplateItemModel{},
		&models.AreaGuidanceModel{},
	}
}

// GormAutoMigrateStrategy implements migration using GORM AutoMigrate
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

// NewGormAutoMigrateStrategy creates a new GORM AutoMigrate strategy
func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm-automigrate"),
	}
}

// Migrate runs GORM AutoMigrate for the given models. Falls back to the full
// model list when none are passed.
func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration",
		"models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("gorm auto-migration failed: %w", err)
	}

	s.logger.Infow("gorm auto-migration completed")
	return nil
}

// GetName returns the strategy name
func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_automigrate"
}
