package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/appointmentsonthego/booking-api/internal/model"
)

// All repository interfaces in one file
type (
	CustomerRepository interface {
		Create(ctx context.Context, customer *model.Customer) error
		Get(ctx context.Context, id uuid.UUID) (*model.Customer, error)
		GetByEmail(ctx context.Context, email string) (*model.Customer, error)
		Update(ctx context.Context, customer *model.Customer) error
		// Delete removes the customer and cascades to its appointments and
		// their messages.
		Delete(ctx context.Context, id uuid.UUID) error
	}

	BusinessRepository interface {
		Create(ctx context.Context, business *model.Business) error
		Get(ctx context.Context, id uuid.UUID) (*model.Business, error)
		GetByEmail(ctx context.Context, email string) (*model.Business, error)
		Update(ctx context.Context, business *model.Business) error
		// Delete removes the business and cascades to its time slots,
		// services, appointments and their messages.
		Delete(ctx context.Context, id uuid.UUID) error
		Search(ctx context.Context, filters *model.BusinessFilters) ([]*model.Business, error)
	}

	TimeSlotRepository interface {
		Create(ctx context.Context, slot *model.TimeSlot) error
		// GetForBusiness scopes the lookup to the owning business; a slot
		// owned by someone else is indistinguishable from a missing one.
		GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*model.TimeSlot, error)
		ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error)
		ListActiveByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error)
		Update(ctx context.Context, slot *model.TimeSlot) error
		Delete(ctx context.Context, id, businessID uuid.UUID) error
	}

	ServiceRepository interface {
		Create(ctx context.Context, svc *model.Service) error
		GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*model.Service, error)
		ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error)
		ListActiveByBusiness(ctx context.Context, businessID uuid.UUID) ([]*model.Service, error)
		Update(ctx context.Context, svc *model.Service) error
		Delete(ctx context.Context, id, businessID uuid.UUID) error
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		GetForCustomer(ctx context.Context, id, customerID uuid.UUID) (*model.Appointment, error)
		GetForBusiness(ctx context.Context, id, businessID uuid.UUID) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) error
		ListForCustomer(ctx context.Context, customerID uuid.UUID, status *model.AppointmentStatus) ([]*model.AppointmentDetail, error)
		ListForBusiness(ctx context.Context, businessID uuid.UUID, status *model.AppointmentStatus) ([]*model.AppointmentDetail, error)
		TrackingCodeExists(ctx context.Context, code string) (bool, error)
		// ListBookedTimes returns the times of all non-cancelled appointments
		// for the business on the given date.
		ListBookedTimes(ctx context.Context, businessID uuid.UUID, date time.Time) ([]string, error)
	}

	MessageRepository interface {
		Create(ctx context.Context, message *model.Message) error
		ListByAppointment(ctx context.Context, appointmentID uuid.UUID) ([]*model.Message, error)
	}

	OutboxRepository interface {
		Create(ctx context.Context, event *model.OutboxEvent) error
		GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
		MarkProcessed(ctx context.Context, id uuid.UUID) error
		MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
		DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
	}
)
