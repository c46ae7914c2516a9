package register

import (
	"context"

	authmodels "github.com/seuzara/barber-booking-service/internal/service/auth/models"
)

type AuthService interface {
	Register(ctx context.Context, req *authmodels.RegisterRequest) (*authmodels.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
