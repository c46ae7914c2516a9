package cancel_booking

import (
	"context"

	bookingmodels "github.com/seuzara/barber-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, id int64, actor bookingmodels.Actor) (*bookingmodels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
