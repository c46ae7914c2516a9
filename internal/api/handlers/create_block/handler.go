package create_block

import (
	"errors"
	"net/http"
	"time"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	"github.com/seuzara/barber-booking-service/internal/service/blocks"
	blockmodels "github.com/seuzara/barber-booking-service/internal/service/blocks/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeFormat  = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidTimeRange   = "конец интервала должен быть позже начала"
	msgInvalidInput       = "некорректные данные блокировки"
)

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	StartAt string  `json:"startAt"` // RFC 3339
	EndAt   string  `json:"endAt"`   // RFC 3339
	Reason  *string `json:"reason,omitempty"`
}

type Handler struct {
	service BlocksService
	logger  Logger
}

func NewHandler(service BlocksService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid start_at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid end_at: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimeFormat)
		return
	}

	result, err := h.service.Create(r.Context(), &blockmodels.CreateBlockRequest{
		StartAt: startAt,
		EndAt:   endAt,
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/blocks - Invalid time range: start_at=%s, end_at=%s", req.StartAt, req.EndAt)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blocks - Failed to create block: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks - Block created: block_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
