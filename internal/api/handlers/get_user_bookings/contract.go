package get_user_bookings

import (
	"context"

	bookingmodels "github.com/seuzara/barber-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, req *bookingmodels.GetUserBookingsRequest) (*bookingmodels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
