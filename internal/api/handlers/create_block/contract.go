package create_block

import (
	"context"

	blockmodels "github.com/seuzara/barber-booking-service/internal/service/blocks/models"
)

type BlocksService interface {
	Create(ctx context.Context, req *blockmodels.CreateBlockRequest) (*blockmodels.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
