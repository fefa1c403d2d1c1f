package message

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/repository"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

// Service handles the per-appointment message thread. Only the appointment's
// customer and business may read or write it.
type Service struct {
	messages     repository.MessageRepository
	appointments repository.AppointmentRepository
}

func NewService(messages repository.MessageRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{messages: messages, appointments: appointments}
}

func (s *Service) Send(ctx context.Context, principal model.Principal, appointmentID uuid.UUID, req *model.SendMessageRequest) (*model.Message, error) {
	if err := s.authorize(ctx, principal, appointmentID); err != nil {
		return nil, err
	}

	msg := &model.Message{
		AppointmentID: appointmentID,
		SenderType:    senderTypeFor(principal.Kind),
		SenderID:      principal.ID,
		Body:          req.Message,
	}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}
	return msg, nil
}

// List returns the thread in chronological order.
func (s *Service) List(ctx context.Context, principal model.Principal, appointmentID uuid.UUID) ([]*model.Message, error) {
	if err := s.authorize(ctx, principal, appointmentID); err != nil {
		return nil, err
	}
	return s.messages.ListByAppointment(ctx, appointmentID)
}

func (s *Service) authorize(ctx context.Context, principal model.Principal, appointmentID uuid.UUID) error {
	appt, err := s.appointments.Get(ctx, appointmentID)
	if err != nil {
		return err
	}

	switch principal.Kind {
	case model.PrincipalCustomer:
		if appt.CustomerID == principal.ID {
			return nil
		}
	case model.PrincipalBusiness:
		if appt.BusinessID == principal.ID {
			return nil
		}
	}
	return apperrors.NewForbidden(fmt.Errorf("principal %s is not a participant of appointment %s", principal.ID, appointmentID))
}

func senderTypeFor(kind model.PrincipalKind) model.SenderType {
	if kind == model.PrincipalBusiness {
		return model.SenderBusiness
	}
	return model.SenderCustomer
}
