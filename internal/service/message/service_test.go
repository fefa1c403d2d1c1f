package message

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

type fakeMessageRepo struct {
	messages []*model.Message
}

func (r *fakeMessageRepo) Create(_ context.Context, m *model.Message) error {
	m.ID = uuid.New()
	m.CreatedAt = time.Now()
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeMessageRepo) ListByAppointment(_ context.Context, appointmentID uuid.UUID) ([]*model.Message, error) {
	var out []*model.Message
	for _, m := range r.messages {
		if m.AppointmentID == appointmentID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	byID map[uuid.UUID]*model.Appointment
}

func (r *fakeAppointmentRepo) Create(_ context.Context, a *model.Appointment) error {
	a.ID = uuid.New()
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAppointmentRepo) Get(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NewNotFound("appointment", nil)
	}
	return a, nil
}

func (r *fakeAppointmentRepo) GetForCustomer(_ context.Context, id, _ uuid.UUID) (*model.Appointment, error) {
	return r.Get(nil, id)
}

func (r *fakeAppointmentRepo) GetForBusiness(_ context.Context, id, _ uuid.UUID) (*model.Appointment, error) {
	return r.Get(nil, id)
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
	return nil, nil
}

func newTestThread(t *testing.T) (*Service, *model.Appointment, model.Principal, model.Principal) {
	t.Helper()

	appointments := &fakeAppointmentRepo{byID: make(map[uuid.UUID]*model.Appointment)}
	appt := &model.Appointment{
		CustomerID: uuid.New(),
		BusinessID: uuid.New(),
	}
	require.NoError(t, appointments.Create(context.Background(), appt))

	svc := NewService(&fakeMessageRepo{}, appointments)
	customer := model.Principal{Kind: model.PrincipalCustomer, ID: appt.CustomerID}
	business := model.Principal{Kind: model.PrincipalBusiness, ID: appt.BusinessID}
	return svc, appt, customer, business
}

func TestParticipantsCanMessage(t *testing.T) {
	svc, appt, customer, business := newTestThread(t)
	ctx := context.Background()

	first, err := svc.Send(ctx, customer, appt.ID, &model.SendMessageRequest{Message: "hi, running late"})
	require.NoError(t, err)
	assert.Equal(t, model.SenderCustomer, first.SenderType)
	assert.Equal(t, customer.ID, first.SenderID)

	second, err := svc.Send(ctx, business, appt.ID, &model.SendMessageRequest{Message: "no problem"})
	require.NoError(t, err)
	assert.Equal(t, model.SenderBusiness, second.SenderType)

	thread, err := svc.List(ctx, customer, appt.ID)
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "hi, running late", thread[0].Body)
	assert.Equal(t, "no problem", thread[1].Body)
}

func TestOutsiderForbidden(t *testing.T) {
	svc, appt, _, _ := newTestThread(t)
	ctx := context.Background()

	otherCustomer := model.Principal{Kind: model.PrincipalCustomer, ID: uuid.New()}
	otherBusiness := model.Principal{Kind: model.PrincipalBusiness, ID: uuid.New()}

	_, err := svc.Send(ctx, otherCustomer, appt.ID, &model.SendMessageRequest{Message: "hello"})
	assert.True(t, apperrors.IsForbidden(err))

	_, err = svc.List(ctx, otherBusiness, appt.ID)
	assert.True(t, apperrors.IsForbidden(err))
}

func TestMissingAppointment(t *testing.T) {
	svc, _, customer, _ := newTestThread(t)

	_, err := svc.Send(context.Background(), customer, uuid.New(), &model.SendMessageRequest{Message: "hello"})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestCrossedKindIDForbidden(t *testing.T) {
	svc, appt, _, _ := newTestThread(t)

	// A business principal holding the customer's ID is still an outsider.
	impostor := model.Principal{Kind: model.PrincipalBusiness, ID: appt.CustomerID}
	_, err := svc.Send(context.Background(), impostor, appt.ID, &model.SendMessageRequest{Message: "hello"})
	assert.True(t, apperrors.IsForbidden(err))
}
