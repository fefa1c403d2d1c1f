package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

const appointmentColumns = `id, tracking_code, customer_id, business_id,
	appointment_date, appointment_time, duration_minutes, status,
	business_note, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (
			id, tracking_code, customer_id, business_id, appointment_date,
			appointment_time, duration_minutes, status, business_note,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	appointment.ID = uuid.New()
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.TrackingCode,
		appointment.CustomerID,
		appointment.BusinessID,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.DurationMinutes,
		appointment.Status,
		appointment.BusinessNote,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)

	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) GetForCustomer(ctx context.Context, id, customerID uuid.UUID) (*model.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1 AND customer_id = $2`, appointmentColumns)

	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id, customerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*model.Appointment, error) {
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1 AND business_id = $2`, appointmentColumns)

	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id, businessID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("appointment", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) error {
	query := `
		UPDATE appointments
		SET appointment_date = $1, appointment_time = $2, duration_minutes = $3,
			status = $4, business_note = $5, updated_at = $6
		WHERE id = $7
	`
	appointment.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		appointment.AppointmentDate,
		appointment.AppointmentTime,
		appointment.DurationMinutes,
		appointment.Status,
		appointment.BusinessNote,
		appointment.UpdatedAt,
		appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("appointment", nil)
	}
	return nil
}

func (r *appointmentRepository) ListForCustomer(ctx context.Context, customerID uuid.UUID, status *model.AppointmentStatus) ([]*model.AppointmentDetail, error) {
	query := `
		SELECT a.id, a.tracking_code, a.customer_id, a.business_id,
			   a.appointment_date, a.appointment_time, a.duration_minutes,
			   a.status, a.business_note, a.created_at, a.updated_at,
			   b.business_name
		FROM appointments a
		JOIN businesses b ON b.id = a.business_id
		WHERE a.customer_id = $1
	`
	args := []interface{}{customerID}

	if status != nil {
		query += " AND a.status = $2"
		args = append(args, *status)
	}

	query += " ORDER BY a.appointment_date ASC, a.appointment_time ASC"

	var appointments []*model.AppointmentDetail
	err := r.db.SelectContext(ctx, &appointments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListForBusiness(ctx context.Context, businessID uuid.UUID, status *model.AppointmentStatus) ([]*model.AppointmentDetail, error) {
	query := `
		SELECT a.id, a.tracking_code, a.customer_id, a.business_id,
			   a.appointment_date, a.appointment_time, a.duration_minutes,
			   a.status, a.business_note, a.created_at, a.updated_at,
			   c.full_name AS customer_name
		FROM appointments a
		JOIN customers c ON c.id = a.customer_id
		WHERE a.business_id = $1
	`
	args := []interface{}{businessID}

	if status != nil {
		query += " AND a.status = $2"
		args = append(args, *status)
	}

	query += " ORDER BY a.appointment_date ASC, a.appointment_time ASC"

	var appointments []*model.AppointmentDetail
	err := r.db.SelectContext(ctx, &appointments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list business appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) TrackingCodeExists(ctx context.Context, code string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM appointments WHERE tracking_code = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, code)
	if err != nil {
		return false, fmt.Errorf("failed to check tracking code: %w", err)
	}
	return exists, nil
}

func (r *appointmentRepository) ListBookedTimes(ctx context.Context, businessID uuid.UUID, date time.Time) ([]string, error) {
	query := `
		SELECT appointment_time
		FROM appointments
		WHERE business_id = $1 AND appointment_date = $2 AND status != $3
		ORDER BY appointment_time ASC
	`
	var times []string
	err := r.db.SelectContext(ctx, &times, query, businessID, date, model.AppointmentStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("failed to list booked times: %w", err)
	}
	return times, nil
}
