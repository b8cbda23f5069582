package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elpresidentey/diasporan-backend/internal/models"
)

func newMockDB(t *testing.T) (DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return &PostgresDB{DB: sqlx.NewDb(mockDB, "sqlmock")}, mock
}

var bookingRowColumns = []string{
	"id", "user_id", "booking_type", "reference_id", "status",
	"start_date", "end_date", "guests", "total_price", "currency", "ticket_type",
	"cancelled_at", "created_at", "updated_at",
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	now := time.Now()
	checkOut := now.AddDate(0, 0, 3)
	booking := &models.Booking{
		UserID:      "user-1",
		BookingType: models.BookingTypeAccommodation,
		ReferenceID: "acc-1",
		Status:      models.BookingStatusPending,
		StartDate:   now,
		EndDate:     &checkOut,
		Guests:      2,
		TotalPrice:  330,
		Currency:    "USD",
	}

	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(
			sqlmock.AnyArg(), booking.UserID, booking.BookingType, booking.ReferenceID,
			booking.Status, booking.StartDate, booking.EndDate, booking.Guests,
			booking.TotalPrice, booking.Currency, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := repo.Create(booking)
	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, now, booking.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CreateError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(&models.Booking{
		UserID:      "user-1",
		BookingType: models.BookingTypeEvent,
		ReferenceID: "evt-1",
		Status:      models.BookingStatusPending,
		StartDate:   time.Now(),
		Guests:      1,
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_GetByIDForUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	now := time.Now()

	t.Run("Found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).
			WithArgs("bk-1", "user-1", models.BookingTypeEvent).
			WillReturnRows(sqlmock.NewRows(bookingRowColumns).AddRow(
				"bk-1", "user-1", "event", "evt-1", "pending",
				now, nil, 2, 80.0, "USD", nil,
				nil, now, now,
			))

		booking, err := repo.GetByIDForUser("bk-1", "user-1", models.BookingTypeEvent)
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, "bk-1", booking.ID)
		assert.Equal(t, models.BookingStatusPending, booking.Status)
	})

	t.Run("Other Users Booking Is Nil", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).
			WithArgs("bk-1", "user-2", models.BookingTypeEvent).
			WillReturnRows(sqlmock.NewRows(bookingRowColumns))

		booking, err := repo.GetByIDForUser("bk-1", "user-2", models.BookingTypeEvent)
		require.NoError(t, err)
		assert.Nil(t, booking)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_CountOverlapping(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	start := time.Date(2026, time.December, 22, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(models.BookingTypeAccommodation, "acc-1", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	count, err := repo.CountOverlapping(models.BookingTypeAccommodation, "acc-1", start, end)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_MarkCancelled(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	cancelledAt := time.Now()

	t.Run("Cancellable Booking", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings`).
			WithArgs("bk-1", cancelledAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		cancelled, err := repo.MarkCancelled("bk-1", cancelledAt)
		require.NoError(t, err)
		assert.True(t, cancelled)
	})

	t.Run("Terminal Booking Affects Zero Rows", func(t *testing.T) {
		mock.ExpectExec(`UPDATE bookings`).
			WithArgs("bk-2", cancelledAt).
			WillReturnResult(sqlmock.NewResult(0, 0))

		cancelled, err := repo.MarkCancelled("bk-2", cancelledAt)
		require.NoError(t, err)
		assert.False(t, cancelled)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewBookingRepository(db)

	t.Run("Deletes Row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM bookings`).
			WithArgs("bk-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete("bk-1"))
	})

	t.Run("Missing Row Is An Error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM bookings`).
			WithArgs("bk-missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Error(t, repo.Delete("bk-missing"))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
