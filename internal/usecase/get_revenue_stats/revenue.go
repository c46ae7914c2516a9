package get_revenue_stats

import (
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// sumRevenueCents суммирует цены бронирований, попадающих в окно [from, to)
// по моменту начала. nil-граница означает отсутствие ограничения
// Учитываются только активные и выполненные бронирования; отмененные
// исключаются всегда, независимо от окна
func sumRevenueCents(bookings []*domain.Booking, from, to *time.Time) int64 {
	var total int64

	for _, booking := range bookings {
		if !booking.CountsAsRevenue() {
			continue
		}
		if from != nil && booking.StartsAt.Before(*from) {
			continue
		}
		if to != nil && !booking.StartsAt.Before(*to) {
			continue
		}
		total += booking.PriceCents
	}

	return total
}
