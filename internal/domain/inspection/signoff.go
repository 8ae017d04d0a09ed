package inspection

import (
	"fmt"
	"strings"
	"time"

	vo "luster/internal/domain/inspection/valueobjects"
)

// Signoff is an immutable attestation that someone reviewed a completed
// inspection. The ledger is append-only: no update or delete exists, and the
// use-case layer only permits creation against completed inspections.
type Signoff struct {
	id           uint
	inspectionID uint
	signerType   vo.SignerType
	signerName   string
	signerTitle  string
	comments     string
	signedAt     time.Time
}

func NewSignoff(
	inspectionID uint,
	signerType vo.SignerType,
	signerName string,
	signerTitle string,
	comments string,
) (*Signoff, error) {
	signerName = strings.TrimSpace(signerName)

	if inspectionID == 0 {
		return nil, fmt.Errorf("inspection ID is required")
	}
	if !signerType.IsValid() {
		return nil, fmt.Errorf("invalid signer type")
	}
	if signerName == "" {
		return nil, fmt.Errorf("signer name is required")
	}
	if len(signerName) > 200 {
		return nil, fmt.Errorf("signer name exceeds maximum length of 200 characters")
	}
	if len(comments) > 2000 {
		return nil, fmt.Errorf("comments exceed maximum length of 2000 characters")
	}

	return &Signoff{
		inspectionID: inspectionID,
		signerType:   signerType,
		signerName:   signerName,
		signerTitle:  strings.TrimSpace(signerTitle),
		comments:     comments,
		signedAt:     time.Now(),
	}, nil
}

func ReconstructSignoff(
	id uint,
	inspectionID uint,
	signerType vo.SignerType,
	signerName string,
	signerTitle string,
	comments string,
	signedAt time.Time,
) (*Signoff, error) {
	if id == 0 {
		return nil, fmt.Errorf("signoff ID cannot be zero")
	}
	if !signerType.IsValid() {
		return nil, fmt.Errorf("invalid signer type")
	}
	if signerName == "" {
		return nil, fmt.Errorf("signer name is required")
	}

	return &Signoff{
		id:           id,
		inspectionID: inspectionID,
		signerType:   signerType,
		signerName:   signerName,
		signerTitle:  signerTitle,
		comments:     comments,
		signedAt:     signedAt,
	}, nil
}

func (s *Signoff) ID() uint {
	return s.id
}

func (s *Signoff) InspectionID() uint {
	return s.inspectionID
}

func (s *Signoff) SignerType() vo.SignerType {
	return s.signerType
}

func (s *Signoff) SignerName() string {
	return s.signerName
}

func (s *Signoff) SignerTitle() string {
	return s.signerTitle
}

func (s *Signoff) Comments() string {
	return s.comments
}

func (s *Signoff) SignedAt() time.Time {
	return s.signedAt
}

func (s *Signoff) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("signoff ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("signoff ID cannot be zero")
	}
	s.id = id
	return nil
}
