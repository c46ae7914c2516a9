package get_revenue_stats

import (
	"context"

	getRevenueStats "github.com/seuzara/barber-booking-service/internal/usecase/get_revenue_stats"
)

type GetRevenueStatsUseCase interface {
	Execute(ctx context.Context) (*getRevenueStats.Response, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
