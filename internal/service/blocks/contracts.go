package blocks

import (
	"context"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.Block) (*domain.Block, error)
	List(ctx context.Context) ([]*domain.Block, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
