package model

import (
	"github.com/google/uuid"
)

// TimeSlot is a recurring weekly availability window for a business, not a
// concrete calendar booking. Start/end are not validated against each other.
type TimeSlot struct {
	Base
	BusinessID          uuid.UUID `db:"business_id" json:"business_id"`
	DayOfWeek           int       `db:"day_of_week" json:"day_of_week"`
	StartTime           string    `db:"start_time" json:"start_time"`
	EndTime             string    `db:"end_time" json:"end_time"`
	SlotDurationMinutes int       `db:"slot_duration_minutes" json:"slot_duration_minutes"`
	IsActive            bool      `db:"is_active" json:"is_active"`
}

type CreateTimeSlotRequest struct {
	DayOfWeek           *int   `json:"day_of_week" binding:"required,gte=0,lte=6"`
	StartTime           string `json:"start_time" binding:"required,datetime=15:04:05"`
	EndTime             string `json:"end_time" binding:"required,datetime=15:04:05"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" binding:"omitempty,gt=0"`
	IsActive            *bool  `json:"is_active"`
}

type UpdateTimeSlotRequest struct {
	DayOfWeek           *int    `json:"day_of_week" binding:"omitempty,gte=0,lte=6"`
	StartTime           *string `json:"start_time" binding:"omitempty,datetime=15:04:05"`
	EndTime             *string `json:"end_time" binding:"omitempty,datetime=15:04:05"`
	SlotDurationMinutes *int    `json:"slot_duration_minutes" binding:"omitempty,gt=0"`
	IsActive            *bool   `json:"is_active"`
}
