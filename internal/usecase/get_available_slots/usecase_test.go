package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeBlockRepo struct {
	blocks []*domain.Block
	err    error
}

func (f *fakeBlockRepo) ListOverlapping(_ context.Context, _, _ time.Time) ([]*domain.Block, error) {
	return f.blocks, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
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

func newTestUseCase(schedule domain.Schedule, bookings *fakeBookingRepo, blocks *fakeBlockRepo, now time.Time) *UseCase {
	uc := NewUseCase(bookings, blocks, schedule, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_EmptyDayReturnsFullGrid(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, schedule.Location)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, schedule.Location)

	uc := newTestUseCase(schedule, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 20)
	assert.Equal(t, time.Date(2026, 3, 14, 9, 0, 0, 0, schedule.Location), resp.Slots[0])
	assert.Equal(t, time.Date(2026, 3, 14, 18, 30, 0, 0, schedule.Location), resp.Slots[19])
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, schedule.Location)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, schedule.Location)
	booked := time.Date(2026, 3, 14, 14, 0, 0, 0, schedule.Location)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartsAt: booked, Status: domain.StatusActive},
	}}

	uc := newTestUseCase(schedule, bookings, &fakeBlockRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 19)
	assert.NotContains(t, resp.Slots, booked)
}

func TestExecute_BookedSlotComparedAsInstant(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, schedule.Location)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, schedule.Location)

	// То же мгновение, но в UTC: 14:00 UTC-3 = 17:00 UTC
	bookedUTC := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartsAt: bookedUTC, Status: domain.StatusActive},
	}}

	uc := newTestUseCase(schedule, bookings, &fakeBlockRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 19)
	assert.NotContains(t, resp.Slots, time.Date(2026, 3, 14, 14, 0, 0, 0, schedule.Location))
}

func TestExecute_CanceledBookingFreesSlot(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, schedule.Location)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, schedule.Location)
	slot := time.Date(2026, 3, 14, 14, 0, 0, 0, schedule.Location)

	bookings := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartsAt: slot, Status: domain.StatusCanceled},
	}}

	uc := newTestUseCase(schedule, bookings, &fakeBlockRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 20)
	assert.Contains(t, resp.Slots, slot)
}

func TestExecute_BlockCoversHalfOpenInterval(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, schedule.Location)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, schedule.Location)

	blocks := &fakeBlockRepo{blocks: []*domain.Block{
		{
			StartAt: time.Date(2026, 3, 14, 12, 0, 0, 0, schedule.Location),
			EndAt:   time.Date(2026, 3, 14, 13, 0, 0, 0, schedule.Location),
		},
	}}

	uc := newTestUseCase(schedule, &fakeBookingRepo{}, blocks, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 18)
	assert.NotContains(t, resp.Slots, time.Date(2026, 3, 14, 12, 0, 0, 0, schedule.Location))
	assert.NotContains(t, resp.Slots, time.Date(2026, 3, 14, 12, 30, 0, 0, schedule.Location))
	assert.Contains(t, resp.Slots, time.Date(2026, 3, 14, 11, 30, 0, 0, schedule.Location))
	assert.Contains(t, resp.Slots, time.Date(2026, 3, 14, 13, 0, 0, 0, schedule.Location))
}

func TestExecute_PastSlotsOfTodayExcluded(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, schedule.Location)
	// Сейчас 11:10 того же дня: слоты 09:00-11:00 уже в прошлом
	now := time.Date(2026, 3, 14, 11, 10, 0, 0, schedule.Location)

	uc := newTestUseCase(schedule, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 15)
	assert.Equal(t, time.Date(2026, 3, 14, 11, 30, 0, 0, schedule.Location), resp.Slots[0])
}

func TestExecute_PastDateReturnsEmpty(t *testing.T) {
	schedule := testSchedule(t)
	date := time.Date(2026, 3, 13, 0, 0, 0, 0, schedule.Location)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, schedule.Location)

	uc := newTestUseCase(schedule, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	schedule := testSchedule(t)
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, schedule.Location)

	uc := newTestUseCase(schedule, &fakeBookingRepo{}, &fakeBlockRepo{}, now)

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
