package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appointmentsonthego/booking-api/internal/model"
	apperrors "github.com/appointmentsonthego/booking-api/pkg/errors"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

func appointmentRows(a *model.Appointment) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "tracking_code", "customer_id", "business_id",
		"appointment_date", "appointment_time", "duration_minutes", "status",
		"business_note", "created_at", "updated_at",
	}).AddRow(
		a.ID, a.TrackingCode, a.CustomerID, a.BusinessID,
		a.AppointmentDate, a.AppointmentTime, a.DurationMinutes, a.Status,
		a.BusinessNote, a.CreatedAt, a.UpdatedAt,
	)
}

func TestAppointmentCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	appt := &model.Appointment{
		TrackingCode:    "A1B2C3D4",
		CustomerID:      uuid.New(),
		BusinessID:      uuid.New(),
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00:00",
		DurationMinutes: 30,
		Status:          model.AppointmentStatusConfirmed,
	}

	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(
			sqlmock.AnyArg(), appt.TrackingCode, appt.CustomerID, appt.BusinessID,
			appt.AppointmentDate, appt.AppointmentTime, appt.DurationMinutes,
			appt.Status, nil, sqlmock.AnyArg(), sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), appt))
	assert.NotEqual(t, uuid.Nil, appt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentGetForCustomer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	appt := &model.Appointment{
		TrackingCode:    "A1B2C3D4",
		CustomerID:      uuid.New(),
		BusinessID:      uuid.New(),
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00:00",
		DurationMinutes: 30,
		Status:          model.AppointmentStatusPending,
	}
	appt.ID = uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE id = \\$1 AND customer_id = \\$2").
		WithArgs(appt.ID, appt.CustomerID).
		WillReturnRows(appointmentRows(appt))

	got, err := repo.GetForCustomer(context.Background(), appt.ID, appt.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, appt.TrackingCode, got.TrackingCode)
	assert.Equal(t, appt.Status, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentGetForCustomerWrongOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	id, customerID := uuid.New(), uuid.New()
	mock.ExpectQuery("SELECT (.+) FROM appointments WHERE id = \\$1 AND customer_id = \\$2").
		WithArgs(id, customerID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetForCustomer(context.Background(), id, customerID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentUpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	appt := &model.Appointment{
		AppointmentDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00:00",
		DurationMinutes: 30,
		Status:          model.AppointmentStatusCancelled,
	}
	appt.ID = uuid.New()

	mock.ExpectExec("UPDATE appointments").
		WithArgs(
			appt.AppointmentDate, appt.AppointmentTime, appt.DurationMinutes,
			appt.Status, nil, sqlmock.AnyArg(), appt.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), appt)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppointmentListForBusinessWithStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	businessID := uuid.New()
	status := model.AppointmentStatusPending

	rows := sqlmock.NewRows([]string{
		"id", "tracking_code", "customer_id", "business_id",
		"appointment_date", "appointment_time", "duration_minutes", "status",
		"business_note", "created_at", "updated_at", "customer_name",
	}).AddRow(
		uuid.New(), "A1B2C3D4", uuid.New(), businessID,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), "10:00:00", 30, status,
		nil, time.Now(), time.Now(), "Alice",
	)

	mock.ExpectQuery("SELECT (.+) FROM appointments a").
		WithArgs(businessID, status).
		WillReturnRows(rows)

	got, err := repo.ListForBusiness(context.Background(), businessID, &status)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice", got[0].CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrackingCodeExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("A1B2C3D4").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.TrackingCodeExists(context.Background(), "A1B2C3D4")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListBookedTimesExcludesCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepository(db)

	businessID := uuid.New()
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT appointment_time").
		WithArgs(businessID, date, model.AppointmentStatusCancelled).
		WillReturnRows(sqlmock.NewRows([]string{"appointment_time"}).
			AddRow("09:00:00").AddRow("10:00:00"))

	times, err := repo.ListBookedTimes(context.Background(), businessID, date)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00:00", "10:00:00"}, times)
	assert.NoError(t, mock.ExpectationsWereMet())
}
