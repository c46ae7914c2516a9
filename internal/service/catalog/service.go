package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/seuzara/barber-booking-service/internal/domain"
	"github.com/seuzara/barber-booking-service/internal/service/catalog/models"
)

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	List(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// Service сервис каталога услуг барбершопа.
// Каталог заполняется миграциями и не меняется через API.
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый сервис каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все услуги каталога
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("[List] Ошибка получения каталога услуг: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}
