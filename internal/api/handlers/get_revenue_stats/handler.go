package get_revenue_stats

import (
	"net/http"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	getRevenueStats "github.com/seuzara/barber-booking-service/internal/usecase/get_revenue_stats"
)

// RevenueStatsResponse HTTP response model
type RevenueStatsResponse struct {
	TodayCents   int64 `json:"todayCents"`
	Last7Cents   int64 `json:"last7DaysCents"`
	MonthCents   int64 `json:"currentMonthCents"`
	AllTimeCents int64 `json:"allTimeCents"`
}

type Handler struct {
	useCase GetRevenueStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetRevenueStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/revenue
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/revenue - Failed to get revenue stats: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRevenueStats.Response) *RevenueStatsResponse {
	return &RevenueStatsResponse{
		TodayCents:   resp.TodayCents,
		Last7Cents:   resp.Last7Cents,
		MonthCents:   resp.MonthCents,
		AllTimeCents: resp.AllTimeCents,
	}
}
