package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seuzara/barber-booking-service/internal/domain"
	authmodels "github.com/seuzara/barber-booking-service/internal/service/auth/models"
)

type fakeParser struct {
	identity *authmodels.Identity
	err      error
}

func (f *fakeParser) ParseToken(string) (*authmodels.Identity, error) {
	return f.identity, f.err
}

type noopLogger struct{}

func (noopLogger) Warn(string, ...interface{}) {}

func clientIdentity() *authmodels.Identity {
	return &authmodels.Identity{UserID: 7, Name: "Rafael Costa", Role: domain.RoleClient}
}

func adminIdentity() *authmodels.Identity {
	return &authmodels.Identity{UserID: 1, Name: "Admin", Role: domain.RoleAdmin}
}

func run(mw func(http.Handler) http.Handler, authHeader string) (*httptest.ResponseRecorder, *authmodels.Identity) {
	var seen *authmodels.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me/bookings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()

	mw(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestRequireAuth_ValidToken(t *testing.T) {
	parser := &fakeParser{identity: clientIdentity()}

	rec, seen := run(RequireAuth(parser, noopLogger{}), "Bearer token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, seen)
	assert.Equal(t, int64(7), seen.UserID)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	parser := &fakeParser{identity: clientIdentity()}

	rec, seen := run(RequireAuth(parser, noopLogger{}), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	parser := &fakeParser{identity: clientIdentity()}

	rec, _ := run(RequireAuth(parser, noopLogger{}), "Basic dXNlcjpwYXNz")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	parser := &fakeParser{err: errors.New("invalid or expired token")}

	rec, _ := run(RequireAuth(parser, noopLogger{}), "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_ClientForbidden(t *testing.T) {
	parser := &fakeParser{identity: clientIdentity()}

	rec, _ := run(RequireAdmin(parser, noopLogger{}), "Bearer token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	parser := &fakeParser{identity: adminIdentity()}

	rec, seen := run(RequireAdmin(parser, noopLogger{}), "Bearer token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seen.IsAdmin())
}

func TestOptionalAuth_NoHeaderPassesThroughAsGuest(t *testing.T) {
	parser := &fakeParser{identity: clientIdentity()}

	rec, seen := run(OptionalAuth(parser, noopLogger{}), "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, seen)
}

func TestOptionalAuth_InvalidTokenRejected(t *testing.T) {
	parser := &fakeParser{err: errors.New("invalid or expired token")}

	rec, _ := run(OptionalAuth(parser, noopLogger{}), "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
