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

func (r *timeSlotRepository) Create(ctx context.Context, slot *model.TimeSlot) error {
	query := `
		INSERT INTO time_slots (
			id, business_id, day_of_week, start_time, end_time,
			slot_duration_minutes, is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	slot.ID = uuid.New()
	slot.CreatedAt = time.Now()
	slot.UpdatedAt = slot.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		slot.ID,
		slot.BusinessID,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.SlotDurationMinutes,
		slot.IsActive,
		slot.CreatedAt,
		slot.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create time slot: %w", err)
	}
	return nil
}

func (r *timeSlotRepository) GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*model.TimeSlot, error) {
	query := `
		SELECT id, business_id, day_of_week, start_time, end_time,
			   slot_duration_minutes, is_active, created_at, updated_at
		FROM time_slots
		WHERE id = $1 AND business_id = $2
	`
	var slot model.TimeSlot
	err := r.db.GetContext(ctx, &slot, query, id, businessID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("time slot", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get time slot: %w", err)
	}
	return &slot, nil
}

func (r *timeSlotRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error) {
	query := `
		SELECT id, business_id, day_of_week, start_time, end_time,
			   slot_duration_minutes, is_active, created_at, updated_at
		FROM time_slots
		WHERE business_id = $1
		ORDER BY day_of_week ASC, start_time ASC
	`
	var slots []*model.TimeSlot
	err := r.db.SelectContext(ctx, &slots, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list time slots: %w", err)
	}
	return slots, nil
}

func (r *timeSlotRepository) ListActiveByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error) {
	query := `
		SELECT id, business_id, day_of_week, start_time, end_time,
			   slot_duration_minutes, is_active, created_at, updated_at
		FROM time_slots
		WHERE business_id = $1 AND is_active = true
		ORDER BY day_of_week ASC, start_time ASC
	`
	var slots []*model.TimeSlot
	err := r.db.SelectContext(ctx, &slots, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active time slots: %w", err)
	}
	return slots, nil
}

func (r *timeSlotRepository) Update(ctx context.Context, slot *model.TimeSlot) error {
	query := `
		UPDATE time_slots
		SET day_of_week = $1, start_time = $2, end_time = $3,
			slot_duration_minutes = $4, is_active = $5, updated_at = $6
		WHERE id = $7 AND business_id = $8
	`
	slot.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		slot.DayOfWeek,
		slot.StartTime,
		slot.EndTime,
		slot.SlotDurationMinutes,
		slot.IsActive,
		slot.UpdatedAt,
		slot.ID,
		slot.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update time slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("time slot", nil)
	}
	return nil
}

func (r *timeSlotRepository) Delete(ctx context.Context, id, businessID uuid.UUID) error {
	query := `DELETE FROM time_slots WHERE id = $1 AND business_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete time slot: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("time slot", nil)
	}
	return nil
}
