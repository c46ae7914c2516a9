package models

import (
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// Request модели

// CreateBlockRequest запрос на создание блокировки
type CreateBlockRequest struct {
	StartAt time.Time
	EndAt   time.Time
	Reason  *string
}

// Response модели

// BlockResponse ответ с данными блокировки
type BlockResponse struct {
	ID      int64   `json:"id"`
	StartAt string  `json:"startAt"` // RFC 3339
	EndAt   string  `json:"endAt"`   // RFC 3339
	Reason  *string `json:"reason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.Block) *BlockResponse {
	if b == nil {
		return nil
	}

	return &BlockResponse{
		ID:        b.ID,
		StartAt:   b.StartAt.Format(time.RFC3339),
		EndAt:     b.EndAt.Format(time.RFC3339),
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.Block) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}

	for _, block := range blocks {
		if blockResp := FromDomainBlock(block); blockResp != nil {
			resp.Blocks = append(resp.Blocks, *blockResp)
		}
	}

	return resp
}
