package directory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointmentsonthego/booking-api/internal/model"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

type fakeBusinessRepo struct {
	byID map[uuid.UUID]*model.Business
}

func (r *fakeBusinessRepo) Create(_ context.Context, b *model.Business) error {
	b.ID = uuid.New()
	r.byID[b.ID] = b
	return nil
}

func (r *fakeBusinessRepo) Get(_ context.Context, id uuid.UUID) (*model.Business, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("business", nil)
	}
	return b, nil
}

func (r *fakeBusinessRepo) GetByEmail(_ context.Context, _ string) (*model.Business, error) {
	return nil, apperrors.NewNotFound("business", nil)
}

func (r *fakeBusinessRepo) Update(_ context.Context, _ *model.Business) error { return nil }
func (r *fakeBusinessRepo) Delete(_ context.Context, _ uuid.UUID) error       { return nil }

func (r *fakeBusinessRepo) Search(_ context.Context, filters *model.BusinessFilters) ([]*model.Business, error) {
	out := make([]*model.Business, 0)
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

type fakeTimeSlotRepo struct {
	slots []*model.TimeSlot
}

func (r *fakeTimeSlotRepo) Create(_ context.Context, s *model.TimeSlot) error {
	s.ID = uuid.New()
	r.slots = append(r.slots, s)
	return nil
}

func (r *fakeTimeSlotRepo) GetForBusiness(_ context.Context, _, _ uuid.UUID) (*model.TimeSlot, error) {
	return nil, apperrors.NewNotFound("time slot", nil)
}

func (r *fakeTimeSlotRepo) ListByBusiness(_ context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error) {
	var out []*model.TimeSlot
	for _, s := range r.slots {
		if s.BusinessID == businessID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeTimeSlotRepo) ListActiveByBusiness(_ context.Context, businessID uuid.UUID) ([]*model.TimeSlot, error) {
	var out []*model.TimeSlot
	for _, s := range r.slots {
		if s.BusinessID == businessID && s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeTimeSlotRepo) Update(_ context.Context, _ *model.TimeSlot) error { return nil }
func (r *fakeTimeSlotRepo) Delete(_ context.Context, _, _ uuid.UUID) error    { return nil }

type fakeServiceRepo struct{}

func (r *fakeServiceRepo) Create(_ context.Context, _ *model.Service) error { return nil }
func (r *fakeServiceRepo) GetForBusiness(_ context.Context, _, _ uuid.UUID) (*model.Service, error) {
	return nil, apperrors.NewNotFound("service", nil)
}
func (r *fakeServiceRepo) ListByBusiness(_ context.Context, _ uuid.UUID) ([]*model.Service, error) {
	return nil, nil
}
func (r *fakeServiceRepo) ListActiveByBusiness(_ context.Context, _ uuid.UUID) ([]*model.Service, error) {
	return nil, nil
}
func (r *fakeServiceRepo) Update(_ context.Context, _ *model.Service) error { return nil }
func (r *fakeServiceRepo) Delete(_ context.Context, _, _ uuid.UUID) error   { return nil }

type fakeAppointmentRepo struct {
	bookedTimes []string
}

func (r *fakeAppointmentRepo) Create(_ context.Context, _ *model.Appointment) error { return nil }
func (r *fakeAppointmentRepo) Get(_ context.Context, _ uuid.UUID) (*model.Appointment, error) {
	return nil, apperrors.NewNotFound("appointment", nil)
}
func (r *fakeAppointmentRepo) GetForCustomer(_ context.Context, _, _ uuid.UUID) (*model.Appointment, error) {
	return nil, apperrors.NewNotFound("appointment", nil)
}
func (r *fakeAppointmentRepo) GetForBusiness(_ context.Context, _, _ uuid.UUID) (*model.Appointment, error) {
	return nil, apperrors.NewNotFound("appointment", nil)
}
func (r *fakeAppointmentRepo) Update(_ context.Context, _ *model.Appointment) error { return nil }
func (r *fakeAppointmentRepo) ListForCustomer(_ context.Context, _ uuid.UUID, _ *model.AppointmentStatus) ([]*model.AppointmentDetail, error) {
	return nil, nil
}
func (r *fakeAppointmentRepo) ListForBusiness(_ context.Context, _ uuid.UUID, _ *model.AppointmentStatus) ([]*model.AppointmentDetail, error) {
	return nil, nil
}
func (r *fakeAppointmentRepo) TrackingCodeExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}
func (r *fakeAppointmentRepo) ListBookedTimes(_ context.Context, _ uuid.UUID, _ time.Time) ([]string, error) {
	return r.bookedTimes, nil
}

func newTestService(t *testing.T) (*Service, uuid.UUID, *fakeTimeSlotRepo) {
	t.Helper()

	businesses := &fakeBusinessRepo{byID: make(map[uuid.UUID]*model.Business)}
	b := &model.Business{Email: "salon@example.com", BusinessName: "The Salon"}
	require.NoError(t, businesses.Create(context.Background(), b))

	slots := &fakeTimeSlotRepo{}
	svc := NewService(businesses, slots, &fakeServiceRepo{}, &fakeAppointmentRepo{bookedTimes: []string{"10:00:00"}})
	return svc, b.ID, slots
}

func TestGetActiveSlotsFiltersInactive(t *testing.T) {
	svc, businessID, slots := newTestService(t)
	ctx := context.Background()

	require.NoError(t, slots.Create(ctx, &model.TimeSlot{BusinessID: businessID, DayOfWeek: 1, IsActive: true}))
	require.NoError(t, slots.Create(ctx, &model.TimeSlot{BusinessID: businessID, DayOfWeek: 2, IsActive: false}))

	active, err := svc.GetActiveSlots(ctx, businessID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 1, active[0].DayOfWeek)
}

func TestUnknownBusinessNotFoundFirst(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()
	missing := uuid.New()

	_, err := svc.GetActiveSlots(ctx, missing)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.GetActiveServices(ctx, missing)
	assert.True(t, apperrors.IsNotFound(err))

	// The missing business wins over the malformed date.
	_, err = svc.GetBookedTimes(ctx, missing, "not-a-date")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetBookedTimes(t *testing.T) {
	svc, businessID, _ := newTestService(t)
	ctx := context.Background()

	times, err := svc.GetBookedTimes(ctx, businessID, "2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00:00"}, times)

	_, err = svc.GetBookedTimes(ctx, businessID, "15-09-2026")
	assert.True(t, apperrors.IsValidation(err))
}
