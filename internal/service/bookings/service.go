package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/seuzara/barber-booking-service/internal/domain"
	storage "github.com/seuzara/barber-booking-service/internal/infra/storage/booking"
	"github.com/seuzara/barber-booking-service/internal/service/bookings/models"
)

// Service сервис управления существующими бронированиями
type Service struct {
	bookingRepo BookingRepository
	schedule    domain.Schedule
	logger      Logger
}

// NewService создает новый сервис бронирований
func NewService(bookingRepo BookingRepository, schedule domain.Schedule, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		schedule:    schedule,
		logger:      logger,
	}
}

// GetByID возвращает бронирование по ID.
// Клиент видит только собственные бронирования, администратор - любые.
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("[GetByID] Бронирование не найдено: booking_id=%d", id)
			return nil, fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, id)
		}
		s.logger.Error("[GetByID] Ошибка получения бронирования: booking_id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !actor.IsAdmin && !booking.OwnedBy(actor.UserID) {
		s.logger.Warn("[GetByID] Доступ запрещен: booking_id=%d, user_id=%d", id, actor.UserID)
		return nil, fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, id)
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает бронирования пользователя, опционально
// отфильтрованные по статусу. Сортировка - от новых к старым.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("[GetUserBookings] Некорректный статус: status=%s", *req.Status)
			return nil, fmt.Errorf("%w: status=%s", ErrInvalidInput, *req.Status)
		}
		status = &parsed
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("[GetUserBookings] Ошибка получения бронирований: user_id=%d, error=%v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetAdminBookings возвращает бронирования для административной панели.
// Фильтр по дню превращается в границы суток в таймзоне расписания.
func (s *Service) GetAdminBookings(ctx context.Context, req *models.GetAdminBookingsRequest) (*models.BookingListResponse, error) {
	filter := domain.BookingsFilter{
		IncludeCanceled: req.IncludeCanceled,
	}

	if req.Date != nil {
		dayStart, dayEnd := s.schedule.DayBoundsForDate(*req.Date)
		filter.From = &dayStart
		filter.To = &dayEnd
	}

	if req.Status != nil {
		parsed, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("[GetAdminBookings] Некорректный статус: status=%s", *req.Status)
			return nil, fmt.Errorf("%w: status=%s", ErrInvalidInput, *req.Status)
		}
		filter.Status = &parsed
		// Явный фильтр по статусу имеет приоритет над исключением отмененных
		filter.IncludeCanceled = true
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("[GetAdminBookings] Ошибка получения бронирований: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет активное бронирование.
// Гостевые бронирования отменяет только администратор.
func (s *Service) Cancel(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("[Cancel] Бронирование не найдено: booking_id=%d", id)
			return nil, fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, id)
		}
		s.logger.Error("[Cancel] Ошибка получения бронирования: booking_id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !actor.IsAdmin {
		if booking.IsGuest() || !booking.OwnedBy(actor.UserID) {
			s.logger.Warn("[Cancel] Доступ запрещен: booking_id=%d, user_id=%d", id, actor.UserID)
			return nil, fmt.Errorf("%w: booking_id=%d", ErrAccessDenied, id)
		}
	}

	if !booking.CanBeCanceled() {
		s.logger.Warn("[Cancel] Бронирование уже завершено: booking_id=%d, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: booking_id=%d, status=%s", ErrAlreadyFinished, id, booking.Status)
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		s.logger.Error("[Cancel] Ошибка отмены бронирования: booking_id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[Cancel] Бронирование отменено: booking_id=%d", id)

	canceled, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("[Cancel] Ошибка получения отмененного бронирования: booking_id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(canceled), nil
}

// Complete помечает активное бронирование выполненным. Только администратор.
func (s *Service) Complete(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			s.logger.Warn("[Complete] Бронирование не найдено: booking_id=%d", id)
			return nil, fmt.Errorf("%w: booking_id=%d", ErrBookingNotFound, id)
		}
		s.logger.Error("[Complete] Ошибка получения бронирования: booking_id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("[Complete] Бронирование уже завершено: booking_id=%d, status=%s", id, booking.Status)
		return nil, fmt.Errorf("%w: booking_id=%d, status=%s", ErrAlreadyFinished, id, booking.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
		s.logger.Error("[Complete] Ошибка завершения бронирования: booking_id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[Complete] Бронирование выполнено: booking_id=%d", id)

	completed, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("[Complete] Ошибка получения завершенного бронирования: booking_id=%d, error=%v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(completed), nil
}
