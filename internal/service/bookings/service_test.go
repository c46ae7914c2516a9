package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seuzara/barber-booking-service/internal/domain"
	storage "github.com/seuzara/barber-booking-service/internal/infra/storage/booking"
	"github.com/seuzara/barber-booking-service/internal/service/bookings/models"
	"github.com/seuzara/barber-booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	byID          map[int64]*domain.Booking
	canceled      []int64
	statusUpdates map[int64]domain.BookingStatus
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{
		byID:          make(map[int64]*domain.Booking),
		statusUpdates: make(map[int64]domain.BookingStatus),
	}
	for _, b := range bookings {
		repo.byID[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := f.byID[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.byID {
		if b.UserID == nil || *b.UserID != userID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	var result []*domain.Booking
	for _, b := range f.byID {
		if filter.From != nil && b.StartsAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !b.StartsAt.Before(*filter.To) {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Status == nil && !filter.IncludeCanceled && b.Status == domain.StatusCanceled {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	booking, ok := f.byID[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	booking.Status = status
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	booking, ok := f.byID[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	booking.Status = domain.StatusCanceled
	now := time.Now()
	booking.CanceledAt = &now
	f.canceled = append(f.canceled, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testSchedule(t *testing.T) domain.Schedule {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return domain.DefaultSchedule(loc)
}

func activeBooking(id, userID int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      ptr.Ptr(userID),
		ServiceID:   1,
		ServiceName: "Corte Social",
		PriceCents:  4500,
		StartsAt:    time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC),
		Status:      domain.StatusActive,
	}
}

func guestBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		GuestName:   ptr.Ptr("Carlos Mendes"),
		GuestPhone:  ptr.Ptr("+55 11 98888-0101"),
		ServiceID:   1,
		ServiceName: "Corte Social",
		PriceCents:  4500,
		StartsAt:    time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Status:      domain.StatusActive,
	}
}

func TestCancel_OwnerCancelsActiveBooking(t *testing.T) {
	repo := newFakeBookingRepo(activeBooking(1, 7))
	svc := NewService(repo, testSchedule(t), noopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, models.Actor{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)
	assert.NotNil(t, resp.CanceledAt)
	assert.Equal(t, []int64{1}, repo.canceled)
}

func TestCancel_SecondCancelFailsExplicitly(t *testing.T) {
	repo := newFakeBookingRepo(activeBooking(1, 7))
	svc := NewService(repo, testSchedule(t), noopLogger{})
	actor := models.Actor{UserID: 7}

	_, err := svc.Cancel(context.Background(), 1, actor)
	require.NoError(t, err)

	// Повторная отмена - детерминированная ошибка, а не no-op
	_, err = svc.Cancel(context.Background(), 1, actor)
	assert.ErrorIs(t, err, ErrAlreadyFinished)
	assert.Len(t, repo.canceled, 1)
}

func TestCancel_CompletedBookingRejected(t *testing.T) {
	booking := activeBooking(1, 7)
	booking.Status = domain.StatusCompleted
	repo := newFakeBookingRepo(booking)
	svc := NewService(repo, testSchedule(t), noopLogger{})

	_, err := svc.Cancel(context.Background(), 1, models.Actor{UserID: 7})

	assert.ErrorIs(t, err, ErrAlreadyFinished)
}

func TestCancel_ForeignBookingDenied(t *testing.T) {
	repo := newFakeBookingRepo(activeBooking(1, 7))
	svc := NewService(repo, testSchedule(t), noopLogger{})

	_, err := svc.Cancel(context.Background(), 1, models.Actor{UserID: 8})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.canceled)
}

func TestCancel_GuestBookingRequiresAdmin(t *testing.T) {
	repo := newFakeBookingRepo(guestBooking(1))
	svc := NewService(repo, testSchedule(t), noopLogger{})

	_, err := svc.Cancel(context.Background(), 1, models.Actor{UserID: 7})
	assert.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Cancel(context.Background(), 1, models.Actor{UserID: 1, IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), resp.Status)
}

func TestCancel_NotFound(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := NewService(repo, testSchedule(t), noopLogger{})

	_, err := svc.Cancel(context.Background(), 42, models.Actor{UserID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestComplete_ActiveBooking(t *testing.T) {
	repo := newFakeBookingRepo(activeBooking(1, 7))
	svc := NewService(repo, testSchedule(t), noopLogger{})

	resp, err := svc.Complete(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.statusUpdates[1])
}

func TestComplete_CanceledBookingRejected(t *testing.T) {
	booking := activeBooking(1, 7)
	booking.Status = domain.StatusCanceled
	repo := newFakeBookingRepo(booking)
	svc := NewService(repo, testSchedule(t), noopLogger{})

	_, err := svc.Complete(context.Background(), 1)

	assert.ErrorIs(t, err, ErrAlreadyFinished)
}

func TestGetByID_AccessControl(t *testing.T) {
	repo := newFakeBookingRepo(activeBooking(1, 7))
	svc := NewService(repo, testSchedule(t), noopLogger{})

	_, err := svc.GetByID(context.Background(), 1, models.Actor{UserID: 7})
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), 1, models.Actor{UserID: 8})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(context.Background(), 1, models.Actor{UserID: 8, IsAdmin: true})
	assert.NoError(t, err)
}

func TestGetUserBookings_InvalidStatusRejected(t *testing.T) {
	repo := newFakeBookingRepo(activeBooking(1, 7))
	svc := NewService(repo, testSchedule(t), noopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: ptr.Ptr("paused"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAdminBookings_DayFilter(t *testing.T) {
	schedule := testSchedule(t)

	inDay := activeBooking(1, 7)
	inDay.StartsAt = time.Date(2026, 3, 14, 14, 0, 0, 0, schedule.Location)
	otherDay := activeBooking(2, 7)
	otherDay.StartsAt = time.Date(2026, 3, 15, 14, 0, 0, 0, schedule.Location)

	repo := newFakeBookingRepo(inDay, otherDay)
	svc := NewService(repo, schedule, noopLogger{})

	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	resp, err := svc.GetAdminBookings(context.Background(), &models.GetAdminBookingsRequest{Date: &date})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)
}
