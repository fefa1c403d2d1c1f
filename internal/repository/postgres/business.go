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

const businessColumns = `id, email, password_hash, business_name, phone, address,
	specialty, description, profile_image, cover_image, created_at, updated_at`

func (r *businessRepository) Create(ctx context.Context, business *model.Business) error {
	query := `
		INSERT INTO businesses (
			id, email, password_hash, business_name, phone, address,
			specialty, description, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	business.ID = uuid.New()
	business.CreatedAt = time.Now()
	business.UpdatedAt = business.CreatedAt

	_, err := r.db.ExecContext(ctx, query,
		business.ID,
		business.Email,
		business.PasswordHash,
		business.BusinessName,
		business.Phone,
		business.Address,
		business.Specialty,
		business.Description,
		business.CreatedAt,
		business.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create business: %w", err)
	}
	return nil
}

func (r *businessRepository) Get(ctx context.Context, id uuid.UUID) (*model.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE id = $1`, businessColumns)

	var business model.Business
	err := r.db.GetContext(ctx, &business, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("business", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business: %w", err)
	}
	return &business, nil
}

func (r *businessRepository) GetByEmail(ctx context.Context, email string) (*model.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE email = $1`, businessColumns)

	var business model.Business
	err := r.db.GetContext(ctx, &business, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("business", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get business by email: %w", err)
	}
	return &business, nil
}

func (r *businessRepository) Update(ctx context.Context, business *model.Business) error {
	query := `
		UPDATE businesses
		SET email = $1, business_name = $2, phone = $3, address = $4,
			specialty = $5, description = $6, profile_image = $7,
			cover_image = $8, updated_at = $9
		WHERE id = $10
	`
	business.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx, query,
		business.Email,
		business.BusinessName,
		business.Phone,
		business.Address,
		business.Specialty,
		business.Description,
		business.ProfileImage,
		business.CoverImage,
		business.UpdatedAt,
		business.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update business: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("business", nil)
	}
	return nil
}

func (r *businessRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM messages
		WHERE appointment_id IN (SELECT id FROM appointments WHERE business_id = $1)
	`, id); err != nil {
		return fmt.Errorf("failed to delete business messages: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE business_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete business appointments: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM time_slots WHERE business_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete business time slots: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM services WHERE business_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete business services: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM businesses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete business: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("business", nil)
	}

	return tx.Commit()
}

func (r *businessRepository) Search(ctx context.Context, filters *model.BusinessFilters) ([]*model.Business, error) {
	query := fmt.Sprintf(`SELECT %s FROM businesses WHERE 1=1`, businessColumns)
	args := []interface{}{}
	argCount := 1

	if filters != nil && filters.Specialty != "" {
		query += fmt.Sprintf(" AND specialty ILIKE $%d", argCount)
		args = append(args, "%"+filters.Specialty+"%")
		argCount++
	}

	if filters != nil && filters.Location != "" {
		query += fmt.Sprintf(" AND address ILIKE $%d", argCount)
		args = append(args, "%"+filters.Location+"%")
		argCount++
	}

	query += " ORDER BY created_at DESC"

	var businesses []*model.Business
	err := r.db.SelectContext(ctx, &businesses, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search businesses: %w", err)
	}
	return businesses, nil
}
