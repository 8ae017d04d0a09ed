package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"luster/internal/application/inspection/usecases"
	"luster/internal/infrastructure/persistence/models"
)

// FacilityDirectory and UserDirectory are read-only lookups into tables owned
// by the rest of the platform. They decorate inspection views with display
// names and never write.
type FacilityDirectory struct {
	db *gorm.DB
}

func NewFacilityDirectory(db *gorm.DB) *FacilityDirectory {
	return &FacilityDirectory{db: db}
}

func (d *FacilityDirectory) GetFacility(ctx context.Context, facilityID uint) (*usecases.FacilityInfo, error) {
	var model models.FacilityModel
	if err := d.db.WithContext(ctx).First(&model, facilityID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find facility: %w", err)
	}

	return &usecases.FacilityInfo{
		ID:      model.ID,
		Name:    model.Name,
		Address: model.Address,
	}, nil
}

type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) GetUser(ctx context.Context, userID uint) (*usecases.UserInfo, error) {
	var model models.UserModel
	if err := d.db.WithContext(ctx).First(&model, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return &usecases.UserInfo{
		ID:   model.ID,
		Name: model.Name,
	}, nil
}
