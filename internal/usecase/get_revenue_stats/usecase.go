package get_revenue_stats

import (
	"context"
	"fmt"
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// UseCase use case для расчета выручки по отчетным окнам
// Все окна считаются по одному снимку бронирований одним правилом включения
type UseCase struct {
	bookingRepo  BookingRepository
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, schedule domain.Schedule, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчета выручки
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("GetRevenueStats: computing revenue totals")

	// 1. Берем снимок всех неотмененных бронирований
	// (отмененные не учитываются ни в одном окне)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{})
	if err != nil {
		uc.logger.Error("GetRevenueStats: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 2. Строим границы окон в таймзоне расписания
	// Границы - абсолютные моменты [00:00 дня, 00:00 следующего), а не префиксы строк
	now := uc.timeProvider.Now()
	dayStart, dayEnd := uc.schedule.DayBounds(now)
	weekStart := dayEnd.AddDate(0, 0, -7)

	local := now.In(uc.schedule.Location)
	monthStart := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, uc.schedule.Location)
	monthEnd := monthStart.AddDate(0, 1, 0)

	// 3. Каждое окно считается независимо, тем же правилом включения
	resp := &Response{
		TodayCents:   sumRevenueCents(bookings, &dayStart, &dayEnd),
		Last7Cents:   sumRevenueCents(bookings, &weekStart, &dayEnd),
		MonthCents:   sumRevenueCents(bookings, &monthStart, &monthEnd),
		AllTimeCents: sumRevenueCents(bookings, nil, nil),
	}

	uc.logger.Info("GetRevenueStats: today=%d, last7=%d, month=%d, allTime=%d cents",
		resp.TodayCents, resp.Last7Cents, resp.MonthCents, resp.AllTimeCents)

	return resp, nil
}
