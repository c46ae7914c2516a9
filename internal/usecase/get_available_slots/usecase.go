package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// UseCase use case для получения доступных слотов на дату
// Чистый пересчет по текущим данным: ничего не кеширует и не хранит
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Для прошедших дат слотов нет
	if isDateInPast(req.Date, now, uc.schedule.Location) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []time.Time{}}, nil
	}

	// 4. Генерируем сетку слотов на день
	// Дата трактуется по календарным компонентам, а не как момент времени
	slots := uc.schedule.SlotsForDay(req.Date)

	// 5. Получаем занимающие слоты бронирования этого дня
	// (отмененные исключаются фильтром - их слоты снова доступны)
	dayStart, dayEnd := uc.schedule.DayBoundsForDate(req.Date)
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		From: &dayStart,
		To:   &dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Получаем блокировки, пересекающие день
	blocks, err := uc.blockRepo.ListOverlapping(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 7. Фильтруем сетку по прошлому, бронированиям и блокировкам
	available := filterAvailableSlots(slots, bookings, blocks, now)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available on %s",
		len(available), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: available,
	}, nil
}
