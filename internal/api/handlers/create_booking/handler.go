package create_booking

import (
	"errors"
	"net/http"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	"github.com/seuzara/barber-booking-service/internal/api/middleware"
	createBooking "github.com/seuzara/barber-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartsAt    = "некорректный формат времени начала, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные бронирования"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotTaken          = "выбранный временной слот уже занят"
	msgSlotBlocked        = "выбранный временной слот заблокирован"
	msgSlotInPast         = "выбранный временной слот уже в прошлом"
	msgInvalidTimeSlot    = "время начала не совпадает с сеткой слотов"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Авторизованный клиент бронирует от своего имени, гость - по имени и телефону
	var userID *int64
	if identity := middleware.IdentityFromContext(r.Context()); identity != nil {
		userID = &identity.UserID
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartsAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: starts_at=%s", req.StartsAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrSlotBlocked):
			h.logger.Warn("POST /bookings - Slot blocked: starts_at=%s", req.StartsAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotBlocked)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: starts_at=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: starts_at=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: starts_at=%s, error=%v", req.StartsAt, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, starts_at=%s",
		result.ID, req.StartsAt)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
