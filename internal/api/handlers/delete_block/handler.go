package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	"github.com/seuzara/barber-booking-service/internal/service/blocks"
)

const (
	msgInvalidBlockID = "некорректный ID блокировки"
	msgBlockNotFound  = "блокировка не найдена"
)

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

// Handle DELETE /api/v1/admin/blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	blockID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.Remove(r.Context(), blockID); err != nil {
		switch {
		case errors.Is(err, blocks.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocks/{id} - Block not found: block_id=%d", blockID)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /admin/blocks/{id} - Failed to delete block: block_id=%d, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocks/{id} - Block deleted: block_id=%d", blockID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
