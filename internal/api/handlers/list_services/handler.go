package list_services

import (
	"context"
	"net/http"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	catalogmodels "github.com/seuzara/barber-booking-service/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context) (*catalogmodels.ServiceListResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
