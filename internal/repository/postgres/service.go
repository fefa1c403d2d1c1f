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

func (r *serviceRepository) Create(ctx context.Context, svc *model.Service) error {
	query := `
		INSERT INTO services (
			id, business_id, name, description, price, duration_minutes,
			is_active, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	svc.ID = uuid.New()
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		svc.ID,
		svc.BusinessID,
		svc.Name,
		svc.Description,
		svc.Price,
		svc.DurationMinutes,
		svc.IsActive,
		svc.CreatedAt,
		svc.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *serviceRepository) GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*model.Service, error) {
	query := `
		SELECT id, business_id, name, description, price, duration_minutes,
			   is_active, created_at, updated_at
		FROM services
		WHERE id = $1 AND business_id = $2
	`
	var svc model.Service
	err := r.db.GetContext(ctx, &svc, query, id, businessID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("service", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &svc, nil
}

func (r *serviceRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error) {
	query := `
		SELECT id, business_id, name, description, price, duration_minutes,
			   is_active, created_at, updated_at
		FROM services
		WHERE business_id = $1
		ORDER BY created_at ASC
	`
	var services []*model.Service
	err := r.db.SelectContext(ctx, &services, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) ListActiveByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error) {
	query := `
		SELECT id, business_id, name, description, price, duration_minutes,
			   is_active, created_at, updated_at
		FROM services
		WHERE business_id = $1 AND is_active = true
		ORDER BY created_at ASC
	`
	var services []*model.Service
	err := r.db.SelectContext(ctx, &services, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active services: %w", err)
	}
	return services, nil
}

func (r *serviceRepository) Update(ctx context.Context, svc *model.Service) error {
	query := `
		UPDATE services
		SET name = $1, description = $2, price = $3, duration_minutes = $4,
			is_active = $5, updated_at = $6
		WHERE id = $7 AND business_id = $8
	`
	svc.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		svc.Name,
		svc.Description,
		svc.Price,
		svc.DurationMinutes,
		svc.IsActive,
		svc.UpdatedAt,
		svc.ID,
		svc.BusinessID,
	)
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("service", nil)
	}
	return nil
}

func (r *serviceRepository) Delete(ctx context.Context, id, businessID uuid.UUID) error {
	query := `DELETE FROM services WHERE id = $1 AND business_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, businessID)
	if err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("service", nil)
	}
	return nil
}
