package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusRejected  AppointmentStatus = "rejected"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Valid reports whether s is one of the six known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusRejected, AppointmentStatusNoShow:
		return true
	}
	return false
}

type Appointment struct {
	Base
	// TrackingCode is the human-facing 8-character identifier, distinct from ID.
	TrackingCode    string            `db:"tracking_code" json:"tracking_code"`
	CustomerID      uuid.UUID         `db:"customer_id" json:"customer_id"`
	BusinessID      uuid.UUID         `db:"business_id" json:"business_id"`
	AppointmentDate time.Time         `db:"appointment_date" json:"appointment_date"`
	AppointmentTime string            `db:"appointment_time" json:"appointment_time"`
	DurationMinutes int               `db:"duration_minutes" json:"duration_minutes"`
	Status          AppointmentStatus `db:"status" json:"status"`
	BusinessNote    *string           `db:"business_note" json:"business_note,omitempty"`
}

// AppointmentDetail is an appointment row joined with the counterparty name.
type AppointmentDetail struct {
	Appointment
	CustomerName string `db:"customer_name" json:"customer_name,omitempty"`
	BusinessName string `db:"business_name" json:"business_name,omitempty"`
}

type CreateAppointmentRequest struct {
	BusinessID      uuid.UUID `json:"business_id" binding:"required"`
	AppointmentDate string    `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime string    `json:"appointment_time" binding:"required,datetime=15:04:05"`
	DurationMinutes int       `json:"duration_minutes" binding:"omitempty,gt=0"`
}

type RescheduleAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date" binding:"required,datetime=2006-01-02"`
	AppointmentTime string `json:"appointment_time" binding:"required,datetime=15:04:05"`
}

type UpdateAppointmentStatusRequest struct {
	Status       string  `json:"status" binding:"required,appointment_status"`
	BusinessNote *string `json:"business_note"`
}
