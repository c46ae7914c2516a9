package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/seuzara/barber-booking-service/internal/api/handlers"
	authmodels "github.com/seuzara/barber-booking-service/internal/service/auth/models"
)

type identityCtxKey struct{}

// TokenParser интерфейс проверки токена аутентификации
type TokenParser interface {
	ParseToken(tokenString string) (*authmodels.Identity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// IdentityFromContext извлекает личность пользователя из контекста запроса.
// Возвращает nil, если запрос не аутентифицирован.
func IdentityFromContext(ctx context.Context) *authmodels.Identity {
	identity, _ := ctx.Value(identityCtxKey{}).(*authmodels.Identity)
	return identity
}

// RequireAuth проверяет Bearer токен и кладет личность пользователя в контекст
func RequireAuth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authenticate(parser, logger, w, r)
			if !ok {
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth кладет личность пользователя в контекст, если токен передан.
// Запросы без токена проходят дальше как гостевые, невалидный токен отклоняется.
func OptionalAuth(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, ok := authenticate(parser, logger, w, r)
			if !ok {
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin проверяет Bearer токен и роль администратора
func RequireAdmin(parser TokenParser, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := authenticate(parser, logger, w, r)
			if !ok {
				return
			}

			if !identity.IsAdmin() {
				logger.Warn("%s %s - Admin access denied: user_id=%d", r.Method, r.URL.Path, identity.UserID)
				handlers.RespondForbidden(w)
				return
			}

			ctx := context.WithValue(r.Context(), identityCtxKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func authenticate(parser TokenParser, logger Logger, w http.ResponseWriter, r *http.Request) (*authmodels.Identity, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		handlers.RespondUnauthorized(w)
		return nil, false
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		logger.Warn("%s %s - Malformed Authorization header", r.Method, r.URL.Path)
		handlers.RespondUnauthorized(w)
		return nil, false
	}

	identity, err := parser.ParseToken(token)
	if err != nil {
		logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
		handlers.RespondUnauthorized(w)
		return nil, false
	}

	return identity, true
}
