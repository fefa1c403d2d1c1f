package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
)

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (
			id, appointment_id, sender_type, sender_id, body, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)
	`
	message.ID = uuid.New()
	message.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		message.ID,
		message.AppointmentID,
		message.SenderType,
		message.SenderID,
		message.Body,
		message.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (r *messageRepository) ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*model.Message, error) {
	query := `
		SELECT id, appointment_id, sender_type, sender_id, body, created_at
		FROM messages
		WHERE appointment_id = $1
		ORDER BY created_at ASC
	`
	var messages []*model.Message
	err := r.db.SelectContext(ctx, &messages, query, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
