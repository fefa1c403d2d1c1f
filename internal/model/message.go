package model

import (
	"time"

	"github.com/google/uuid"
)

type SenderType string

const (
	SenderCustomer SenderType = "customer"
	SenderBusiness SenderType = "business"
)

// Message is one entry in an appointment's append-only thread.
type Message struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	AppointmentID uuid.UUID  `db:"appointment_id" json:"appointment_id"`
	SenderType    SenderType `db:"sender_type" json:"sender_type"`
	SenderID      uuid.UUID  `db:"sender_id" json:"sender_id"`
	Body          string     `db:"body" json:"message"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

type SendMessageRequest struct {
	Message string `json:"message" binding:"required,min=1,max=1000"`
}
