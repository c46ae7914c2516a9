package login

import (
	"context"

	authmodels "github.com/seuzara/barber-booking-service/internal/service/auth/models"
)

type AuthService interface {
	Login(ctx context.Context, req *authmodels.LoginRequest) (*authmodels.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
