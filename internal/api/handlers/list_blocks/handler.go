package list_blocks

import (
	"context"
	"net/http"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	blockmodels "github.com/seuzara/barber-booking-service/internal/service/blocks/models"
)

type BlocksService interface {
	List(ctx context.Context) (*blockmodels.BlockListResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
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

// Handle GET /api/v1/admin/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocks - Failed to list blocks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
