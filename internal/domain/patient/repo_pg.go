package patient

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

func (r *repoPG) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var p Profile
	err := r.pool.QueryRow(ctx, `
		SELECT u.id, u.email, u.role, p.full_name, p.date_of_birth,
		       p.gender, p.blood_group, p.phone, p.address, p.emergency_contact
		FROM users u
		JOIN patients p ON u.id = p.user_id
		WHERE u.id = $1`,
		userID).
		Scan(&p.UserID, &p.Email, &p.Role, &p.FullName, &p.DateOfBirth,
			&p.Gender, &p.BloodGroup, &p.Phone, &p.Address, &p.EmergencyContact)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repoPG) FindIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx,
		`SELECT id FROM patients WHERE user_id = $1`, userID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *repoPG) UpdateProfile(ctx context.Context, patientID uuid.UUID, p *ProfileUpdate) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE patients
		SET full_name = $2, date_of_birth = $3, gender = $4, blood_group = $5,
		    phone = $6, address = $7, emergency_contact = $8, updated_at = NOW()
		WHERE id = $1`,
		patientID, p.FullName, p.DateOfBirth, p.Gender, p.BloodGroup,
		p.Phone, p.Address, p.EmergencyContact)
	return err
}

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewDoctorRepoPG(pool *pgxpool.Pool) DoctorRepository { return &doctorRepoPG{pool: pool} }

func (r *doctorRepoPG) ListAll(ctx context.Context) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.full_name, d.specialization, d.qualification,
		       d.experience, d.consultation_fee, d.available_days
		FROM doctors d
		ORDER BY d.full_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		var d Doctor
		if err := rows.Scan(&d.ID, &d.FullName, &d.Specialization, &d.Qualification,
			&d.Experience, &d.ConsultationFee, &d.AvailableDays); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}
