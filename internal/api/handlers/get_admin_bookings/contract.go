package get_admin_bookings

import (
	"context"

	bookingmodels "github.com/seuzara/barber-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetAdminBookings(ctx context.Context, req *bookingmodels.GetAdminBookingsRequest) (*bookingmodels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
