package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seuzara/barber-booking-service/internal/domain"
	storage "github.com/seuzara/barber-booking-service/internal/infra/storage/user"
	"github.com/seuzara/barber-booking-service/internal/service/auth/models"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	email := strings.ToLower(user.Email)
	if _, exists := f.byEmail[email]; exists {
		return nil, storage.ErrEmailTaken
	}
	created := *user
	created.ID = f.nextID
	created.Email = email
	created.CreatedAt = time.Now()
	f.nextID++
	f.byEmail[email] = &created
	return &created, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range f.byEmail {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(repo UserRepository, now time.Time) *Service {
	return NewService(repo, "test-secret", 72*time.Hour, bcrypt.MinCost, &fixedTimeProvider{now: now}, noopLogger{})
}

func TestRegister_CreatesClientWithHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, time.Now())

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "Rafael@Example.com",
		Password: "super-secret-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	// Роль всегда client, независимо от входных данных
	assert.Equal(t, string(domain.RoleClient), resp.User.Role)
	assert.Equal(t, "rafael@example.com", resp.User.Email)

	// Пароль хранится только как bcrypt хеш
	stored := repo.byEmail["rafael@example.com"]
	require.NotNil(t, stored)
	assert.NotContains(t, stored.PasswordHash, "super-secret-1")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("super-secret-1")))
}

func TestRegister_DuplicateEmailRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, time.Now())

	req := &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "rafael@example.com",
		Password: "super-secret-1",
	}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ShortPasswordRejected(t *testing.T) {
	svc := newTestService(newFakeUserRepo(), time.Now())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "rafael@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, time.Now())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "rafael@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "rafael@example.com",
		Password: "super-secret-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Rafael Costa", resp.User.Name)
}

func TestLogin_WrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, time.Now())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "rafael@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	_, wrongPass := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "rafael@example.com",
		Password: "wrong-password",
	})
	_, unknownEmail := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "super-secret-1",
	})

	assert.ErrorIs(t, wrongPass, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestParseToken_Roundtrip(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, time.Now())

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "rafael@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	identity, err := svc.ParseToken(resp.Token)

	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, identity.UserID)
	assert.Equal(t, "Rafael Costa", identity.Name)
	assert.Equal(t, domain.RoleClient, identity.Role)
	assert.False(t, identity.IsAdmin())
}

func TestParseToken_WrongSecretRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo, time.Now())

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "rafael@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	other := NewService(repo, "other-secret", 72*time.Hour, bcrypt.MinCost, &fixedTimeProvider{now: time.Now()}, noopLogger{})

	_, err = other.ParseToken(resp.Token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_ExpiredRejected(t *testing.T) {
	repo := newFakeUserRepo()

	// Токен выпущен неделю назад при TTL 72 часа
	issuedAt := time.Now().Add(-7 * 24 * time.Hour)
	svc := newTestService(repo, issuedAt)

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "Rafael Costa",
		Email:    "rafael@example.com",
		Password: "super-secret-1",
	})
	require.NoError(t, err)

	_, err = svc.ParseToken(resp.Token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
