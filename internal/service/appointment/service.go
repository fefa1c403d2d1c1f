package appointment

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
	"github.com/appointmentsonthego/booking-api/internal/repository"
	"github.com/appointmentsonthego/booking-api/internal/service/event"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
	"github.com/appointmentsonthego/booking-api/pkg/logger"
)

const (
	trackingCodeLength     = 8
	trackingCodeAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	defaultDurationMinutes = 30
)

// Service handles the appointment lifecycle for both portals. Customers own
// booking, rescheduling and cancellation; businesses own status changes.
type Service struct {
	appointments repository.AppointmentRepository
	businesses   repository.BusinessRepository
	events       *event.Service
	logger       *logger.Logger
}

func NewService(
	appointments repository.AppointmentRepository,
	businesses repository.BusinessRepository,
	events *event.Service,
	log *logger.Logger,
) *Service {
	return &Service{
		appointments: appointments,
		businesses:   businesses,
		events:       events,
		logger:       log,
	}
}

// Create books an appointment with the given business. The new appointment
// starts out confirmed and gets a unique 8-character tracking code.
func (s *Service) Create(ctx context.Context, customerID uuid.UUID, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if _, err := s.businesses.Get(ctx, req.BusinessID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, apperrors.NewValidation("appointment_date must be YYYY-MM-DD", err)
	}

	code, err := s.generateTrackingCode(ctx)
	if err != nil {
		return nil, err
	}

	appt := &model.Appointment{
		TrackingCode:    code,
		CustomerID:      customerID,
		BusinessID:      req.BusinessID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		DurationMinutes: req.DurationMinutes,
		Status:          model.AppointmentStatusConfirmed,
	}
	if appt.DurationMinutes == 0 {
		appt.DurationMinutes = defaultDurationMinutes
	}

	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.emit(ctx, model.EventAppointmentCreated, appt)
	return appt, nil
}

// Reschedule moves a customer's appointment to a new date and time. Completed
// and cancelled appointments cannot be rescheduled; everything else drops
// back to pending for the business to re-approve.
func (s *Service) Reschedule(ctx context.Context, customerID, appointmentID uuid.UUID, req *model.RescheduleAppointmentRequest) (*model.Appointment, error) {
	appt, err := s.appointments.GetForCustomer(ctx, appointmentID, customerID)
	if err != nil {
		return nil, err
	}

	if appt.Status == model.AppointmentStatusCompleted || appt.Status == model.AppointmentStatusCancelled {
		return nil, apperrors.NewValidation(
			fmt.Sprintf("cannot reschedule a %s appointment", appt.Status), nil)
	}

	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, apperrors.NewValidation("appointment_date must be YYYY-MM-DD", err)
	}

	appt.AppointmentDate = date
	appt.AppointmentTime = req.AppointmentTime
	appt.Status = model.AppointmentStatusPending

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	s.emit(ctx, model.EventAppointmentRescheduled, appt)
	return appt, nil
}

// Cancel marks a customer's appointment cancelled. It succeeds regardless of
// the current status.
func (s *Service) Cancel(ctx context.Context, customerID, appointmentID uuid.UUID) (*model.Appointment, error) {
	appt, err := s.appointments.GetForCustomer(ctx, appointmentID, customerID)
	if err != nil {
		return nil, err
	}

	appt.Status = model.AppointmentStatusCancelled
	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to cancel appointment: %w", err)
	}

	s.emit(ctx, model.EventAppointmentCancelled, appt)
	return appt, nil
}

// UpdateStatus lets the owning business set any of the known statuses,
// optionally attaching a note. No transition rules apply on this side.
func (s *Service) UpdateStatus(ctx context.Context, businessID, appointmentID uuid.UUID, req *model.UpdateAppointmentStatusRequest) (*model.Appointment, error) {
	status := model.AppointmentStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid status %q", req.Status), nil)
	}

	appt, err := s.appointments.GetForBusiness(ctx, appointmentID, businessID)
	if err != nil {
		return nil, err
	}

	appt.Status = status
	if req.BusinessNote != nil {
		appt.BusinessNote = req.BusinessNote
	}

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	s.emit(ctx, model.EventAppointmentStatusChanged, appt)
	return appt, nil
}

func (s *Service) ListForCustomer(ctx context.Context, customerID uuid.UUID, status *model.AppointmentStatus) ([]*model.AppointmentDetail, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid status %q", *status), nil)
	}
	return s.appointments.ListForCustomer(ctx, customerID, status)
}

func (s *Service) ListForBusiness(ctx context.Context, businessID uuid.UUID, status *model.AppointmentStatus) ([]*model.AppointmentDetail, error) {
	if status != nil && !status.Valid() {
		return nil, apperrors.NewValidation(fmt.Sprintf("invalid status %q", *status), nil)
	}
	return s.appointments.ListForBusiness(ctx, businessID, status)
}

// generateTrackingCode draws random codes until one is free. Collisions are
// vanishingly rare at 36^8 but the retry keeps the invariant explicit.
func (s *Service) generateTrackingCode(ctx context.Context) (string, error) {
	for {
		code, err := randomCode(trackingCodeLength)
		if err != nil {
			return "", fmt.Errorf("failed to generate tracking code: %w", err)
		}
		exists, err := s.appointments.TrackingCodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check tracking code: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
}

func randomCode(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = trackingCodeAlphabet[int(b)%len(trackingCodeAlphabet)]
	}
	return string(buf), nil
}

// emit records the event best-effort; the appointment write already
// succeeded and must not be rolled back by an outbox failure.
func (s *Service) emit(ctx context.Context, eventType string, appt *model.Appointment) {
	if s.events == nil {
		return
	}
	if err := s.events.Emit(ctx, eventType, appt); err != nil {
		s.logger.Error(err, "failed to record outbox event",
			"event_type", eventType,
			"appointment_id", appt.ID.String())
	}
}
