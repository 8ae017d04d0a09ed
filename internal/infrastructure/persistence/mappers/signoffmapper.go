package mappers

import (
	"fmt"

	"luster/internal/domain/inspection"
	vo "luster/internal/domain/inspection/valueobjects"
	"luster/internal/infrastructure/persistence/models"
)

type SignoffMapper interface {
	ToModel(signoff *inspection.Signoff) *models.SignoffModel
	ToDomain(model *models.SignoffModel) (*inspection.Signoff, error)
}

type SignoffMapperImpl struct{}

func NewSignoffMapper() SignoffMapper {
	return &SignoffMapperImpl{}
}

func (m *SignoffMapperImpl) ToModel(signoff *inspection.Signoff) *models.SignoffModel {
	return &models.SignoffModel{
		ID:           signoff.ID(),
		InspectionID: signoff.InspectionID(),
		SignerType:   signoff.SignerType().String(),
		SignerName:   signoff.SignerName(),
		SignerTitle:  signoff.SignerTitle(),
		Comments:     signoff.Comments(),
		SignedAt:     signoff.SignedAt().UnixMilli(),
	}
}

func (m *SignoffMapperImpl) ToDomain(model *models.SignoffModel) (*inspection.Signoff, error) {
	signerType, err := vo.NewSignerType(model.SignerType)
	if err != nil {
		return nil, fmt.Errorf("failed to map signoff signer type (id=%d): %w", model.ID, err)
	}

	return inspection.ReconstructSignoff(
		model.ID,
		model.InspectionID,
		signerType,
		model.SignerName,
		model.SignerTitle,
		model.Comments,
		millisToTime(model.SignedAt),
	)
}
