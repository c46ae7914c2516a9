package get_revenue_stats

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
	filter   domain.BookingsFilter
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, nil
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

func TestExecute_RevenueWindows(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	schedule := domain.DefaultSchedule(loc)

	// Сейчас 2026-03-20, 15:00
	now := time.Date(2026, 3, 20, 15, 0, 0, 0, loc)

	day := func(d, hour int) time.Time {
		return time.Date(2026, 3, d, hour, 0, 0, 0, loc)
	}

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		// Сегодня: активное и выполненное
		{StartsAt: day(20, 10), Status: domain.StatusActive, PriceCents: 4500},
		{StartsAt: day(20, 11), Status: domain.StatusCompleted, PriceCents: 3500},
		// Внутри последних 7 дней, но не сегодня
		{StartsAt: day(16, 10), Status: domain.StatusCompleted, PriceCents: 7000},
		// Ровно 7 дней назад: вне окна (окно полуоткрытое)
		{StartsAt: day(13, 10), Status: domain.StatusCompleted, PriceCents: 4500},
		// Начало месяца: только в месячном и общем итогах
		{StartsAt: day(1, 10), Status: domain.StatusCompleted, PriceCents: 3500},
		// Прошлый месяц: только в общем итоге
		{StartsAt: time.Date(2026, 2, 10, 10, 0, 0, 0, loc), Status: domain.StatusCompleted, PriceCents: 7000},
	}}

	uc := NewUseCase(repo, schedule, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(8000), resp.TodayCents)
	assert.Equal(t, int64(15000), resp.Last7Cents)        // сегодня + 16-е число
	assert.Equal(t, int64(23000), resp.MonthCents)        // весь март, включая 13-е и 1-е
	assert.Equal(t, int64(30000), resp.AllTimeCents)      // плюс февраль
}

func TestExecute_CanceledNeverCounted(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	schedule := domain.DefaultSchedule(loc)
	now := time.Date(2026, 3, 20, 15, 0, 0, 0, loc)

	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		{StartsAt: time.Date(2026, 3, 20, 10, 0, 0, 0, loc), Status: domain.StatusCanceled, PriceCents: 4500},
	}}

	uc := NewUseCase(repo, schedule, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}

	resp, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Zero(t, resp.TodayCents)
	assert.Zero(t, resp.Last7Cents)
	assert.Zero(t, resp.MonthCents)
	assert.Zero(t, resp.AllTimeCents)
}

func TestSumRevenueCents_HalfOpenWindow(t *testing.T) {
	loc := time.UTC
	from := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	to := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)

	bookings := []*domain.Booking{
		{StartsAt: from, Status: domain.StatusActive, PriceCents: 100},                    // граница from включена
		{StartsAt: to, Status: domain.StatusActive, PriceCents: 200},                     // граница to исключена
		{StartsAt: from.Add(-time.Second), Status: domain.StatusActive, PriceCents: 400}, // до окна
	}

	assert.Equal(t, int64(100), sumRevenueCents(bookings, &from, &to))
	assert.Equal(t, int64(700), sumRevenueCents(bookings, nil, nil))
}
