package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/infrastructure/persistence/models"
	"luster/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.InspectionModel{},
		&models.InspectionItemModel{},
		&models.CorrectiveActionModel{},
		&models.SignoffModel{},
		&models.ActivityModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestInspection(t *testing.T, number string, facilityID uint) *inspection.Inspection {
	lobby, err := inspection.NewItem("Lobby", "Floor clean and dry", 3)
	require.NoError(t, err)
	restroom, err := inspection.NewItem("Restrooms", "Fixtures sanitized", 2)
	require.NoError(t, err)

	insp, err := inspection.NewInspection(facilityID, 7, time.Now().Add(24*time.Hour), []*inspection.Item{lobby, restroom})
	require.NoError(t, err)
	require.NoError(t, insp.SetNumber(number))
	return insp
}

func TestInspectionRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInspectionRepository(db)
	ctx := context.Background()

	t.Run("save new inspection successfully", func(t *testing.T) {
		insp := createTestInspection(t, "INS-20260115-0001", 1)

		err := repo.Save(ctx, insp)
		assert.NoError(t, err)
		assert.NotZero(t, insp.ID())
		for _, item := range insp.Items() {
			assert.NotZero(t, item.ID())
			assert.Equal(t, insp.ID(), item.InspectionID())
		}
	})

	t.Run("save rejects duplicate number", func(t *testing.T) {
		first := createTestInspection(t, "INS-20260115-0002", 1)
		require.NoError(t, repo.Save(ctx, first))

		dup := createTestInspection(t, "INS-20260115-0002", 2)
		err := repo.Save(ctx, dup)
		assert.Error(t, err)
	})
}

func TestInspectionRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInspectionRepository(db)
	ctx := context.Background()

	t.Run("roundtrips the aggregate", func(t *testing.T) {
		insp := createTestInspection(t, "INS-20260116-0001", 3)
		require.NoError(t, repo.Save(ctx, insp))

		found, err := repo.GetByID(ctx, insp.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, insp.Number(), found.Number())
		assert.Equal(t, vo.StatusScheduled, found.Status())
		assert.Equal(t, insp.FacilityID(), found.FacilityID())
		require.Len(t, found.Items(), 2)
		assert.Equal(t, "Lobby", found.Items()[0].Category())
		assert.Equal(t, 3, found.Items()[0].Weight())
		assert.Equal(t, vo.ScoreUnset, found.Items()[0].Score())
	})

	t.Run("returns nil for missing inspection", func(t *testing.T) {
		found, err := repo.GetByID(ctx, 99999)
		assert.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestInspectionRepository_GetByNumber(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInspectionRepository(db)
	ctx := context.Background()

	insp := createTestInspection(t, "INS-20260117-0001", 4)
	require.NoError(t, repo.Save(ctx, insp))

	found, err := repo.GetByNumber(ctx, "INS-20260117-0001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, insp.ID(), found.ID())

	missing, err := repo.GetByNumber(ctx, "INS-00000000-0000")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInspectionRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInspectionRepository(db)
	ctx := context.Background()

	t.Run("persists lifecycle transition and item scores", func(t *testing.T) {
		insp := createTestInspection(t, "INS-20260118-0001", 5)
		require.NoError(t, repo.Save(ctx, insp))

		require.NoError(t, insp.Start())
		require.NoError(t, repo.Update(ctx, insp))

		rating := 4
		results := map[uint]inspection.ItemResult{}
		for _, item := range insp.Items() {
			results[item.ID()] = inspection.ItemResult{Score: vo.ScorePass, Rating: &rating}
		}
		require.NoError(t, insp.Complete("All areas in good shape", results))
		require.NoError(t, repo.Update(ctx, insp))

		found, err := repo.GetByID(ctx, insp.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, vo.StatusCompleted, found.Status())
		require.NotNil(t, found.OverallScore())
		assert.Equal(t, 100, *found.OverallScore())
		assert.Equal(t, insp.Version(), found.Version())
		for _, item := range found.Items() {
			assert.Equal(t, vo.ScorePass, item.Score())
		}
	})

	t.Run("stale version yields conflict", func(t *testing.T) {
		insp := createTestInspection(t, "INS-20260118-0002", 5)
		require.NoError(t, repo.Save(ctx, insp))

		loadedA, err := repo.GetByID(ctx, insp.ID())
		require.NoError(t, err)
		loadedB, err := repo.GetByID(ctx, insp.ID())
		require.NoError(t, err)

		require.NoError(t, loadedA.Start())
		require.NoError(t, repo.Update(ctx, loadedA))

		require.NoError(t, loadedB.Start())
		err = repo.Update(ctx, loadedB)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))
	})
}

func TestInspectionRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInspectionRepository(db)
	ctx := context.Background()

	t.Run("removes inspection and items", func(t *testing.T) {
		insp := createTestInspection(t, "INS-20260119-0001", 6)
		require.NoError(t, repo.Save(ctx, insp))

		require.NoError(t, repo.Delete(ctx, insp.ID()))

		found, err := repo.GetByID(ctx, insp.ID())
		assert.NoError(t, err)
		assert.Nil(t, found)

		var itemCount int64
		require.NoError(t, db.Model(&models.InspectionItemModel{}).
			Where("inspection_id = ?", insp.ID()).
			Count(&itemCount).Error)
		assert.Zero(t, itemCount)
	})

	t.Run("missing inspection yields not found", func(t *testing.T) {
		err := repo.Delete(ctx, 99999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestInspectionRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInspectionRepository(db)
	ctx := context.Background()

	for i, facilityID := range []uint{10, 10, 11} {
		insp := createTestInspection(t, "INS-20260120-000"+string(rune('1'+i)), facilityID)
		require.NoError(t, repo.Save(ctx, insp))
	}

	t.Run("filters by facility", func(t *testing.T) {
		facilityID := uint(10)
		results, total, err := repo.List(ctx, inspection.Filter{FacilityID: &facilityID})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		assert.Len(t, results, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		status := vo.StatusScheduled
		_, total, err := repo.List(ctx, inspection.Filter{Status: &status})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)

		status = vo.StatusCompleted
		_, total, err = repo.List(ctx, inspection.Filter{Status: &status})
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("paginates results", func(t *testing.T) {
		results, total, err := repo.List(ctx, inspection.Filter{Page: 1, PageSize: 2, SortBy: "number", SortOrder: "asc"})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		require.Len(t, results, 2)
		assert.Equal(t, "INS-20260120-0001", results[0].Number())
	})

	t.Run("rejects unknown sort field by falling back to default", func(t *testing.T) {
		results, _, err := repo.List(ctx, inspection.Filter{SortBy: "number; DROP TABLE inspections"})
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})
}
