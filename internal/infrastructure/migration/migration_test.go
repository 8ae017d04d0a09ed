package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewManager_StrategySelection(t *testing.T) {
	tests := []struct {
		environment string
		wantName    string
	}{
		{environment: "development", wantName: "gorm_automigrate"},
		{environment: "test", wantName: "golang_migrate"},
		{environment: "production", wantName: "golang_migrate"},
		{environment: "somewhere-else", wantName: "gorm_automigrate"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			manager := NewManager(tt.environment)
			assert.Equal(t, tt.wantName, manager.GetStrategy().GetName())
		})
	}
}

func TestGormAutoMigrateStrategy_Migrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	strategy := NewGormAutoMigrateStrategy()

	t.Run("migrates the full model list by default", func(t *testing.T) {
		require.NoError(t, strategy.Migrate(db))

		for _, table := range []string{
			"inspections",
			"inspection_items",
			"inspection_corrective_actions",
			"inspection_signoffs",
			"inspection_activities",
			"inspection_templates",
			"inspection_template_items",
			"area_guidance",
		} {
			assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		assert.NoError(t, strategy.Migrate(db))
	})
}

func TestManager_MigrateWithAutoMigrateModels(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	manager := NewManager("development")
	require.NoError(t, manager.Migrate(db, AutoMigrateModels()...))
	assert.True(t, db.Migrator().HasTable("inspections"))
}
