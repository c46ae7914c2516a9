package get_admin_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	"github.com/seuzara/barber-booking-service/internal/domain"
	"github.com/seuzara/barber-booking-service/internal/service/bookings"
	bookingmodels "github.com/seuzara/barber-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilters = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings?date=&status=&includeCanceled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &bookingmodels.GetAdminBookingsRequest{
		IncludeCanceled: query.Get("includeCanceled") == "true",
	}

	if dateParam := query.Get("date"); dateParam != "" {
		date, err := time.Parse(domain.DateFormat, dateParam)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid date: date=%s", dateParam)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetAdminBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filters: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidFilters)

		default:
			h.logger.Error("GET /admin/bookings - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
