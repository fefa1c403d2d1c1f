package directory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/repository"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

// Service serves the anonymous public directory: business search, profiles,
// their active availability and services, and booked times for a date.
type Service struct {
	businesses   repository.BusinessRepository
	slots        repository.TimeSlotRepository
	services     repository.ServiceRepository
	appointments repository.AppointmentRepository
}

func NewService(
	businesses repository.BusinessRepository,
	slots repository.TimeSlotRepository,
	services repository.ServiceRepository,
	appointments repository.AppointmentRepository,
) *Service {
	return &Service{
		businesses:   businesses,
		slots:        slots,
		services:     services,
		appointments: appointments,
	}
}

func (s *Service) SearchBusinesses(ctx context.Context, filters *model.BusinessFilters) ([]*model.Business, error) {
	return s.businesses.Search(ctx, filters)
}

func (s *Service) GetBusiness(ctx context.Context, businessID uuid.UUID) (*model.Business, error) {
	return s.businesses.Get(ctx, businessID)
}

func (s *Service) GetActiveSlots(ctx context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error) {
	if _, err := s.businesses.Get(ctx, businessID); err != nil {
		return nil, err
	}
	return s.slots.ListActiveByBusiness(ctx, businessID)
}

func (s *Service) GetActiveServices(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error) {
	if _, err := s.businesses.Get(ctx, businessID); err != nil {
		return nil, err
	}
	return s.services.ListActiveByBusiness(ctx, businessID)
}

// GetBookedTimes returns the times already taken by non-cancelled
// appointments with the business on the given date.
func (s *Service) GetBookedTimes(ctx context.Context, businessID uuid.UUID, date string) ([]string, error) {
	if _, err := s.businesses.Get(ctx, businessID); err != nil {
		return nil, err
	}

	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, apperrors.NewValidation("date must be YYYY-MM-DD", err)
	}
	return s.appointments.ListBookedTimes(ctx, businessID, parsed)
}
