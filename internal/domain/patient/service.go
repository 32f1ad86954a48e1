package patient

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mediconnect/mediconnect/internal/platform/api"
)

type Service struct {
	repo    Repository
	doctors DoctorRepository
}

func NewService(repo Repository, doctors DoctorRepository) *Service {
	return &Service{repo: repo, doctors: doctors}
}

// ProfileUpdate carries the mutable profile fields. Updates overwrite the
// whole row; there are no partial-patch semantics.
type ProfileUpdate struct {
	FullName         string     `json:"fullName" validate:"required"`
	DateOfBirth      *time.Time `json:"dateOfBirth"`
	Gender           *string    `json:"gender"`
	BloodGroup       *string    `json:"bloodGroup"`
	Phone            *string    `json:"phone"`
	Address          *string    `json:"address"`
	EmergencyContact *string    `json:"emergencyContact"`
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, api.NotFound("Patient profile not found")
	}
	if err != nil {
		return nil, api.Unexpected("Error fetching profile", err)
	}
	return profile, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, upd *ProfileUpdate) error {
	patientID, err := s.repo.FindIDByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return api.NotFound("Patient not found")
	}
	if err != nil {
		return api.Unexpected("Error updating profile", err)
	}

	if err := s.repo.UpdateProfile(ctx, patientID, upd); err != nil {
		return api.Unexpected("Error updating profile", err)
	}
	return nil
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	doctors, err := s.doctors.ListAll(ctx)
	if err != nil {
		return nil, api.Unexpected("Error fetching doctors", err)
	}
	return doctors, nil
}
