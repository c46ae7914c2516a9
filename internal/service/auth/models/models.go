package models

import (
	"time"

	"github.com/seuzara/barber-booking-service/internal/domain"
)

// Request модели

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// LoginRequest запрос на вход
type LoginRequest struct {
	Email    string
	Password string
}

// Response модели

// UserResponse ответ с данными пользователя (без хеша пароля)
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse ответ с токеном и данными пользователя
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// Identity аутентифицированный пользователь из токена
type Identity struct {
	UserID int64
	Name   string
	Role   domain.UserRole
}

// IsAdmin сообщает, является ли пользователь администратором
func (i Identity) IsAdmin() bool {
	return i.Role == domain.RoleAdmin
}

// Методы конвертации

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}
