package availability

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/repository"
)

const defaultSlotDurationMinutes = 30

// Service manages a business's recurring weekly time slots.
type Service struct {
	slots repository.TimeSlotRepository
}

func NewService(slots repository.TimeSlotRepository) *Service {
	return &Service{slots: slots}
}

func (s *Service) CreateSlot(ctx context.Context, businessID uuid.UUID, req *model.CreateTimeSlotRequest) (*model.TimeSlot, error) {
	slot := &model.TimeSlot{
		BusinessID:          businessID,
		DayOfWeek:           *req.DayOfWeek,
		StartTime:           req.StartTime,
		EndTime:             req.EndTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
		IsActive:            true,
	}
	if slot.SlotDurationMinutes == 0 {
		slot.SlotDurationMinutes = defaultSlotDurationMinutes
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	if err := s.slots.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to create time slot: %w", err)
	}
	return slot, nil
}

func (s *Service) ListSlots(ctx context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error) {
	return s.slots.ListByBusiness(ctx, businessID)
}

func (s *Service) UpdateSlot(ctx context.Context, businessID, slotID uuid.UUID, req *model.UpdateTimeSlotRequest) (*model.TimeSlot, error) {
	slot, err := s.slots.GetForBusiness(ctx, slotID, businessID)
	if err != nil {
		return nil, err
	}

	if req.DayOfWeek != nil {
		slot.DayOfWeek = *req.DayOfWeek
	}
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if req.SlotDurationMinutes != nil {
		slot.SlotDurationMinutes = *req.SlotDurationMinutes
	}
	if req.IsActive != nil {
		slot.IsActive = *req.IsActive
	}

	if err := s.slots.Update(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to update time slot: %w", err)
	}
	return slot, nil
}

func (s *Service) DeleteSlot(ctx context.Context, businessID, slotID uuid.UUID) error {
	return s.slots.Delete(ctx, slotID, businessID)
}
