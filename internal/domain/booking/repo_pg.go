package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) Create(ctx context.Context, a *Appointment) error {
	a.ID = uuid.New()
	a.Status = StatusScheduled
	err := r.pool.QueryRow(ctx, `
		INSERT INTO appointments (id, patient_id, doctor_id, appointment_date, appointment_time, symptoms, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`,
		a.ID, a.PatientID, a.DoctorID, a.AppointmentDate, a.AppointmentTime, a.Symptoms, a.Status).
		Scan(&a.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *repoPG) SlotTaken(ctx context.Context, slot Slot) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE doctor_id = $1 AND appointment_date = $2
			  AND appointment_time = $3 AND status <> 'cancelled'
		)`,
		slot.DoctorID, slot.Date, slot.Time).Scan(&exists)
	return exists, err
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*AppointmentView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.appointment_date, a.appointment_time, a.status,
		       a.symptoms, a.notes, d.full_name, d.specialization, a.created_at
		FROM appointments a
		JOIN doctors d ON a.doctor_id = d.id
		WHERE a.patient_id = $1
		ORDER BY a.appointment_date DESC, a.appointment_time DESC`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*AppointmentView
	for rows.Next() {
		var v AppointmentView
		var date time.Time
		if err := rows.Scan(&v.ID, &date, &v.AppointmentTime, &v.Status,
			&v.Symptoms, &v.Notes, &v.DoctorName, &v.Specialization, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.AppointmentDate = date.Format(dateLayout)
		items = append(items, &v)
	}
	return items, rows.Err()
}

func (r *repoPG) Cancel(ctx context.Context, appointmentID, patientID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE appointments
		SET status = 'cancelled'
		WHERE id = $1 AND patient_id = $2 AND status <> 'cancelled'`,
		appointmentID, patientID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// patientLookupPG resolves patients straight from the patients table.
type patientLookupPG struct{ pool *pgxpool.Pool }

func NewPatientLookupPG(pool *pgxpool.Pool) PatientLookup { return &patientLookupPG{pool: pool} }

func (r *patientLookupPG) FindByUserID(ctx context.Context, userID uuid.UUID) (*PatientRef, error) {
	var p PatientRef
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name FROM patients WHERE user_id = $1`, userID).
		Scan(&p.ID, &p.FullName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// doctorLookupPG resolves doctors straight from the doctors table.
type doctorLookupPG struct{ pool *pgxpool.Pool }

func NewDoctorLookupPG(pool *pgxpool.Pool) DoctorLookup { return &doctorLookupPG{pool: pool} }

func (r *doctorLookupPG) FindByID(ctx context.Context, doctorID uuid.UUID) (*DoctorRef, error) {
	var d DoctorRef
	err := r.pool.QueryRow(ctx,
		`SELECT id, full_name FROM doctors WHERE id = $1`, doctorID).
		Scan(&d.ID, &d.FullName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}
