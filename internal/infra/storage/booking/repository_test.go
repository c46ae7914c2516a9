package booking

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seuzara/barber-booking-service/internal/domain"
	"github.com/seuzara/barber-booking-service/pkg/dbmetrics"
	"github.com/seuzara/barber-booking-service/pkg/ptr"
)

const selectColumns = "SELECT id, user_id, guest_name, guest_phone, service_id, service_name, " +
	"price_cents, starts_at, status, created_at, canceled_at FROM bookings"

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	return NewRepository(db), mock, func() { db.Close() }
}

func bookingRows(bookings ...*domain.Booking) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "guest_name", "guest_phone", "service_id", "service_name",
		"price_cents", "starts_at", "status", "created_at", "canceled_at",
	})
	for _, b := range bookings {
		rows.AddRow(b.ID, b.UserID, b.GuestName, b.GuestPhone, b.ServiceID, b.ServiceName,
			b.PriceCents, b.StartsAt, string(b.Status), b.CreatedAt, b.CanceledAt)
	}
	return rows
}

func TestCreate_Success(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	startsAt := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)
	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO bookings (user_id,guest_name,guest_phone,service_id,service_name,price_cents,starts_at,status) "+
		"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at").
		WithArgs(nil, "Carlos Mendes", "+55 11 98888-0101", int64(1), "Corte Social", int64(4500), startsAt, domain.StatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(101), createdAt))

	created, err := repo.Create(context.Background(), &domain.Booking{
		GuestName:   ptr.Ptr("Carlos Mendes"),
		GuestPhone:  ptr.Ptr("+55 11 98888-0101"),
		ServiceID:   1,
		ServiceName: "Corte Social",
		PriceCents:  4500,
		StartsAt:    startsAt,
		Status:      domain.StatusActive,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolationMapsToSlotTaken(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	startsAt := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO bookings (user_id,guest_name,guest_phone,service_id,service_name,price_cents,starts_at,status) "+
		"VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		GuestName:   ptr.Ptr("Carlos Mendes"),
		GuestPhone:  ptr.Ptr("+55 11 98888-0101"),
		ServiceID:   1,
		ServiceName: "Corte Social",
		PriceCents:  4500,
		StartsAt:    startsAt,
		Status:      domain.StatusActive,
	})

	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithFilter_DayWindowExcludesCanceled(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	from := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(selectColumns+" WHERE starts_at >= $1 AND starts_at < $2 AND status <> $3 ORDER BY starts_at ASC").
		WithArgs(from, to, domain.StatusCanceled).
		WillReturnRows(bookingRows(&domain.Booking{
			ID:          1,
			UserID:      ptr.Ptr(int64(7)),
			ServiceID:   1,
			ServiceName: "Corte Social",
			PriceCents:  4500,
			StartsAt:    from.Add(14 * time.Hour),
			Status:      domain.StatusActive,
			CreatedAt:   from,
		}))

	bookings, err := repo.GetWithFilter(context.Background(), domain.BookingsFilter{
		From: &from,
		To:   &to,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(1), bookings[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetWithFilter_LocksDayRowsInsideTransaction(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	from := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	db, dbMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer db.Close()

	dbMock.ExpectBegin()
	dbMock.ExpectQuery(selectColumns + " WHERE starts_at >= $1 AND starts_at < $2 AND status <> $3 ORDER BY starts_at ASC FOR UPDATE").
		WithArgs(from, to, domain.StatusCanceled).
		WillReturnRows(bookingRows())

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	ctx := dbmetrics.WithTx(context.Background(), tx)

	bookings, err := repo.GetWithFilter(ctx, domain.BookingsFilter{
		From: &from,
		To:   &to,
	})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	_ = mock
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectQuery(selectColumns + " WHERE id = $1").
		WithArgs(int64(42)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancel_NoRowsMeansNotFound(t *testing.T) {
	repo, mock, cleanup := newMock(t)
	defer cleanup()

	mock.ExpectExec("UPDATE bookings SET status = $1, canceled_at = NOW() WHERE id = $2").
		WithArgs(domain.StatusCanceled, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 42)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
