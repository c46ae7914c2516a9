package get_available_slots

import (
	"context"
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetWithFilter получает бронирования, попадающие в период фильтра
	GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	// ListOverlapping получает блокировки, пересекающие интервал [from, to)
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.Block, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
