package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/repository"
)

const defaultServiceDurationMinutes = 30

// Service manages the offered-service catalog of a business.
type Service struct {
	services repository.ServiceRepository
}

func NewService(services repository.ServiceRepository) *Service {
	return &Service{services: services}
}

func (s *Service) CreateService(ctx context.Context, businessID uuid.UUID, req *model.CreateServiceRequest) (*model.Service, error) {
	svc := &model.Service{
		BusinessID:      businessID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
		IsActive:        true,
	}
	if svc.DurationMinutes == 0 {
		svc.DurationMinutes = defaultServiceDurationMinutes
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, businessID, serviceID uuid.UUID) (*model.Service, error) {
	return s.services.GetForBusiness(ctx, serviceID, businessID)
}

func (s *Service) ListServices(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error) {
	return s.services.ListByBusiness(ctx, businessID)
}

func (s *Service) UpdateService(ctx context.Context, businessID, serviceID uuid.UUID, req *model.UpdateServiceRequest) (*model.Service, error) {
	svc, err := s.services.GetForBusiness(ctx, serviceID, businessID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Price != nil {
		svc.Price = *req.Price
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, businessID, serviceID uuid.UUID) error {
	return s.services.Delete(ctx, serviceID, businessID)
}
