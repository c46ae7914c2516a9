package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
	bookingRepo "github.com/seuzara/barber-booking-service/internal/infra/storage/booking"
	serviceRepo "github.com/seuzara/barber-booking-service/internal/infra/storage/service"
)

// UseCase use case для создания бронирования
// Между показом свободных слотов и подтверждением данные могли измениться,
// поэтому проверка доступности повторяется здесь по актуальному набору
// бронирований внутри сериализуемой транзакции
type UseCase struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// два клиента, увидевших один свободный слот, не создадут два бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, startsAt=%s, guest=%t",
		req.ServiceID, req.StartsAt.Format(time.RFC3339), req.UserID == nil)

	// 1. Валидация входных данных - до любых проверок конфликтов
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем, что момент начала лежит на сетке и не в прошлом
	if err := validateSlot(uc.schedule, req.StartsAt, now); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Повторная проверка доступности и вставка - в одной сериализуемой
	// транзакции, чтобы между чтением и записью не вклинилось чужое бронирование
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Читаем занимающие слоты бронирования дня с блокировкой (FOR UPDATE)
		dayStart, dayEnd := uc.schedule.DayBounds(req.StartsAt)
		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			From: &dayStart,
			To:   &dayEnd,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		if isSlotBooked(req.StartsAt, bookings) {
			uc.logger.Warn("CreateBooking: slot %s is already taken", req.StartsAt.Format(time.RFC3339))
			return ErrSlotTaken
		}

		// 5.2. Проверяем блокировки администратора
		blocks, err := uc.blockRepo.ListOverlapping(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		if isSlotBlocked(req.StartsAt, blocks) {
			uc.logger.Warn("CreateBooking: slot %s is blocked", req.StartsAt.Format(time.RFC3339))
			return ErrSlotBlocked
		}

		// 5.3. Создаем бронирование со снимком названия и цены услуги:
		// последующие изменения каталога не трогают историю
		booking := &domain.Booking{
			UserID:      req.UserID,
			GuestName:   trimmedPtr(req.GuestName),
			GuestPhone:  trimmedPtr(req.GuestPhone),
			ServiceID:   service.ID,
			ServiceName: service.Name,
			PriceCents:  service.PriceCents,
			StartsAt:    req.StartsAt,
			Status:      domain.StatusActive,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс по starts_at - последний рубеж против гонки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot %s taken at insert time", req.StartsAt.Format(time.RFC3339))
				return ErrSlotTaken
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:          result.ID,
		UserID:      result.UserID,
		GuestName:   result.GuestName,
		GuestPhone:  result.GuestPhone,
		ServiceID:   result.ServiceID,
		StartsAt:    result.StartsAt,
		Status:      string(result.Status),
		ServiceName: result.ServiceName,
		PriceCents:  result.PriceCents,
		CreatedAt:   result.CreatedAt,
	}, nil
}

// trimmedPtr возвращает указатель на строку без крайних пробелов
// nil остается nil
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
