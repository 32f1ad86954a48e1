package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mediconnect/mediconnect/internal/platform/api"
)

// Notifier dispatches a best-effort message. Implementations must not
// block the caller; delivery failures are their own concern.
type Notifier interface {
	Dispatch(to, subject, body string)
}

type Service struct {
	repo     Repository
	patients PatientLookup
	doctors  DoctorLookup
	notifier Notifier
	logger   zerolog.Logger
}

func NewService(repo Repository, patients PatientLookup, doctors DoctorLookup, notifier Notifier, logger zerolog.Logger) *Service {
	return &Service{repo: repo, patients: patients, doctors: doctors, notifier: notifier, logger: logger}
}

// BookRequest carries the booking parameters from the HTTP layer.
type BookRequest struct {
	DoctorID        string  `json:"doctorId" validate:"required"`
	AppointmentDate string  `json:"appointmentDate" validate:"required"`
	AppointmentTime string  `json:"appointmentTime" validate:"required"`
	Symptoms        *string `json:"symptoms"`
}

// Book reserves a slot for the patient owned by userID. The insert is the
// authority on slot availability: the advisory SlotTaken pre-check gives
// the common case a friendly answer, but a concurrent double-submit is
// decided by the store's unique slot index, never by the pre-check.
func (s *Service) Book(ctx context.Context, userID uuid.UUID, userEmail string, req BookRequest) (uuid.UUID, error) {
	doctorID, err := uuid.Parse(req.DoctorID)
	if err != nil {
		return uuid.Nil, api.Validation("invalid doctorId")
	}
	date, err := time.Parse(dateLayout, req.AppointmentDate)
	if err != nil {
		return uuid.Nil, api.Validation("appointmentDate must be YYYY-MM-DD")
	}
	if _, err := time.Parse(timeLayout, req.AppointmentTime); err != nil {
		return uuid.Nil, api.Validation("appointmentTime must be HH:MM")
	}

	patient, err := s.patients.FindByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return uuid.Nil, api.NotFound("Patient profile not found")
	}
	if err != nil {
		return uuid.Nil, api.Unexpected("Error booking appointment", err)
	}

	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if errors.Is(err, ErrNotFound) {
		return uuid.Nil, api.NotFound("Doctor not found")
	}
	if err != nil {
		return uuid.Nil, api.Unexpected("Error booking appointment", err)
	}

	slot := Slot{DoctorID: doctorID, Date: date, Time: req.AppointmentTime}
	taken, err := s.repo.SlotTaken(ctx, slot)
	if err != nil {
		return uuid.Nil, api.Unexpected("Error booking appointment", err)
	}
	if taken {
		return uuid.Nil, api.Conflict("This slot is already booked. Please choose another time.")
	}

	appt := &Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Symptoms:        req.Symptoms,
	}
	if err := s.repo.Create(ctx, appt); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			// Lost the race between pre-check and insert.
			return uuid.Nil, api.Conflict("This slot is already booked. Please choose another time.")
		}
		return uuid.Nil, api.Unexpected("Error booking appointment", err)
	}

	if s.notifier != nil && userEmail != "" {
		s.notifier.Dispatch(
			userEmail,
			"Appointment Confirmation - MediConnect",
			fmt.Sprintf(
				"<h2>Appointment Booked!</h2><p>Dear %s,</p><p>Your appointment has been confirmed with %s on %s at %s.</p>",
				patient.FullName, doctor.FullName, req.AppointmentDate, req.AppointmentTime),
		)
	}

	return appt.ID, nil
}

// List returns the appointments of the patient owned by userID, joined
// with doctor details, newest slot first.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error) {
	patient, err := s.patients.FindByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, api.NotFound("Patient not found")
	}
	if err != nil {
		return nil, api.Unexpected("Error fetching appointments", err)
	}

	items, err := s.repo.ListByPatient(ctx, patient.ID)
	if err != nil {
		return nil, api.Unexpected("Error fetching appointments", err)
	}
	return items, nil
}

// Cancel flips the appointment to cancelled, but only when it belongs to
// the calling patient and is still scheduled. A miss on either condition
// reads the same to the caller, so one patient cannot probe for the
// existence of another's appointments.
func (s *Service) Cancel(ctx context.Context, userID, appointmentID uuid.UUID) error {
	patient, err := s.patients.FindByUserID(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return api.NotFound("Patient not found")
	}
	if err != nil {
		return api.Unexpected("Error cancelling appointment", err)
	}

	cancelled, err := s.repo.Cancel(ctx, appointmentID, patient.ID)
	if err != nil {
		return api.Unexpected("Error cancelling appointment", err)
	}
	if !cancelled {
		return api.NotFound("Appointment not found")
	}

	s.logger.Info().
		Str("appointment_id", appointmentID.String()).
		Str("patient_id", patient.ID.String()).
		Msg("appointment cancelled")
	return nil
}
