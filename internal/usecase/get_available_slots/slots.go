package get_available_slots

import (
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// filterAvailableSlots отбирает из сетки дня слоты, доступные для бронирования
// Слот доступен, если он одновременно:
//   - не в прошлом (с допуском domain.PastSlotGrace, чтобы граница текущей
//     минуты не мигала в выдаче)
//   - не занят активным или выполненным бронированием
//   - не попадает ни в одну блокировку администратора
//
// Порядок слотов сохраняется (хронологический)
func filterAvailableSlots(
	slots []time.Time,
	bookings []*domain.Booking,
	blocks []*domain.Block,
	now time.Time,
) []time.Time {
	available := make([]time.Time, 0, len(slots))

	for _, slot := range slots {
		if isPastSlot(slot, now) {
			continue
		}
		if isSlotBooked(slot, bookings) {
			continue
		}
		if isSlotBlocked(slot, blocks) {
			continue
		}
		available = append(available, slot)
	}

	return available
}

// isPastSlot проверяет, что слот уже в прошлом
func isPastSlot(slot time.Time, now time.Time) bool {
	return slot.Before(now.Add(-domain.PastSlotGrace))
}

// isSlotBooked проверяет, занят ли слот бронированием
// Сравниваем абсолютные моменты времени (time.Equal), а не строки:
// строковое сравнение ломается на разных представлениях таймзон
func isSlotBooked(slot time.Time, bookings []*domain.Booking) bool {
	for _, booking := range bookings {
		if booking.BlocksSlot() && booking.StartsAt.Equal(slot) {
			return true
		}
	}
	return false
}

// isSlotBlocked проверяет, попадает ли слот в блокировку администратора
// Интервал блокировки полуоткрытый [StartAt, EndAt):
//   - блокировка 12:00-13:00 закрывает слоты 12:00 и 12:30
//   - слоты 11:30 и 13:00 остаются доступны
func isSlotBlocked(slot time.Time, blocks []*domain.Block) bool {
	for _, block := range blocks {
		if block.Covers(slot) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
// Компоненты даты берутся как есть: дата - календарный день, а не момент,
// конвертация в таймзону сдвинула бы ее на сутки назад
func isDateInPast(date, now time.Time, loc *time.Location) bool {
	n := now.In(loc)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	nowOnly := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
	return dateOnly.Before(nowOnly)
}
