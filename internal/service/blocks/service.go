package blocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/seuzara/barber-booking-service/internal/domain"
	storage "github.com/seuzara/barber-booking-service/internal/infra/storage/block"
	"github.com/seuzara/barber-booking-service/internal/service/blocks/models"
)

// Service сервис управления блокировками расписания
type Service struct {
	blockRepo BlockRepository
	logger    Logger
}

// NewService создает новый сервис блокировок
func NewService(blockRepo BlockRepository, logger Logger) *Service {
	return &Service{
		blockRepo: blockRepo,
		logger:    logger,
	}
}

// Create создает блокировку интервала [StartAt, EndAt).
// Существующие бронирования внутри интервала не затрагиваются.
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, err
	}

	block := &domain.Block{
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
		Reason:  trimmedReason(req.Reason),
	}

	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("[Create] Ошибка создания блокировки: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[Create] Блокировка создана: block_id=%d, start_at=%s, end_at=%s",
		created.ID, created.StartAt, created.EndAt)

	return models.FromDomainBlock(created), nil
}

// List возвращает все блокировки, отсортированные по началу интервала
func (s *Service) List(ctx context.Context) (*models.BlockListResponse, error) {
	blocks, err := s.blockRepo.List(ctx)
	if err != nil {
		s.logger.Error("[List] Ошибка получения блокировок: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainBlockList(blocks), nil
}

// Remove удаляет блокировку по ID
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrBlockNotFound) {
			s.logger.Warn("[Remove] Блокировка не найдена: block_id=%d", id)
			return fmt.Errorf("%w: block_id=%d", ErrBlockNotFound, id)
		}
		s.logger.Error("[Remove] Ошибка удаления блокировки: block_id=%d, error=%v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[Remove] Блокировка удалена: block_id=%d", id)

	return nil
}

func (s *Service) validateCreateRequest(req *models.CreateBlockRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: start_at and end_at are required", ErrInvalidInput)
	}

	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: start_at=%s, end_at=%s", ErrInvalidTimeRange, req.StartAt, req.EndAt)
	}

	if req.Reason != nil && len(strings.TrimSpace(*req.Reason)) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	return nil
}

func trimmedReason(reason *string) *string {
	if reason == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
