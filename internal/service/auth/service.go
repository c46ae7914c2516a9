package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seuzara/barber-booking-service/internal/domain"
	storage "github.com/seuzara/barber-booking-service/internal/infra/storage/user"
	"github.com/seuzara/barber-booking-service/internal/service/auth/models"
)

const minPasswordLength = 8

// Service сервис регистрации и аутентификации
type Service struct {
	userRepo     UserRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
	bcryptCost   int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис аутентификации
func NewService(
	userRepo UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	bcryptCost int,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}

	return &Service{
		userRepo:     userRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		bcryptCost:   bcryptCost,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Register регистрирует нового пользователя.
// Роль всегда client: администраторы заводятся напрямую в базе.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("[Register] Ошибка хеширования пароля: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         domain.RoleClient,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			s.logger.Warn("[Register] Email уже занят: email=%s", user.Email)
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, user.Email)
		}
		s.logger.Error("[Register] Ошибка создания пользователя: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("[Register] Пользователь зарегистрирован: user_id=%d", created.ID)

	return s.authResponse(created)
}

// Login проверяет учетные данные и выпускает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req == nil || req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			s.logger.Warn("[Login] Пользователь не найден: email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("[Login] Ошибка получения пользователя: error=%v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("[Login] Неверный пароль: user_id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("[Login] Пользователь вошел: user_id=%d", user.ID)

	return s.authResponse(user)
}

func (s *Service) authResponse(user *domain.User) (*models.AuthResponse, error) {
	token, err := s.issueToken(user, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("[authResponse] Ошибка выпуска токена: user_id=%d, error=%v", user.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *models.FromDomainUser(user),
	}, nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: malformed email", ErrInvalidInput)
	}

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	return nil
}
