package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Все проверки выполняются до обращения к БД: некорректный запрос
// не должен доходить до проверки конфликтов
func validateRequest(req *Request) error {
	if err := validateIdentity(req); err != nil {
		return err
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	return nil
}

// validateIdentity проверяет, что указана ровно одна идентичность:
// либо пользователь, либо гость с именем и телефоном
func validateIdentity(req *Request) error {
	hasUser := req.UserID != nil
	hasGuest := req.GuestName != nil || req.GuestPhone != nil

	if hasUser && hasGuest {
		return fmt.Errorf("%w: booking cannot have both a user and guest identity", ErrInvalidInput)
	}

	if hasUser {
		if *req.UserID <= 0 {
			return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
		}
		return nil
	}

	name := ""
	if req.GuestName != nil {
		name = strings.TrimSpace(*req.GuestName)
	}
	phone := ""
	if req.GuestPhone != nil {
		phone = strings.TrimSpace(*req.GuestPhone)
	}

	if name == "" || phone == "" {
		return fmt.Errorf("%w: guest bookings require a name and a phone", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: guest name is too long", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: guest phone is too long", ErrInvalidInput)
	}

	return nil
}

// validateSlot проверяет, что момент начала лежит на сетке расписания
// и еще не прошел
func validateSlot(schedule domain.Schedule, startsAt, now time.Time) error {
	if !schedule.ContainsSlot(startsAt) {
		return ErrInvalidTimeSlot
	}

	if startsAt.Before(now.Add(-domain.PastSlotGrace)) {
		return ErrSlotInPast
	}

	return nil
}

// isSlotBooked проверяет, занят ли слот бронированием
// Сравнение абсолютных моментов, не строк
func isSlotBooked(slot time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.BlocksSlot() && booking.StartsAt.Equal(slot) {
			return true
		}
	}
	return false
}

// isSlotBlocked проверяет, попадает ли слот в блокировку [StartAt, EndAt)
func isSlotBlocked(slot time.Time, blocks []*domain.Block) bool {
	for _, block := range blocks {
		if block.Covers(slot) {
			return true
		}
	}
	return false
}
