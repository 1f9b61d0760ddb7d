package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/repo"
	"github.com/SergeyBogomolovv/dairy-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authAPI interface {
	Register(ctx context.Context, params service.RegisterParams) (entities.User, error)
	Login(ctx context.Context, username, password string) (entities.Session, entities.User, error)
	Logout(ctx context.Context, token string) error
	Authenticate(ctx context.Context, token string) (entities.AuthContext, error)
	ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error
	ListCustomers(ctx context.Context) ([]entities.User, error)
	EnsureAdmin(ctx context.Context, username, email, password string) error
}

func newAuthService(t *testing.T, ttl time.Duration) authAPI {
	t.Helper()
	store := repo.NewMemoryRepo()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewAuthService(logger, store, store, ttl)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, time.Hour)

	user, err := svc.Register(ctx, service.RegisterParams{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Phone:    "1234567890",
		Address:  "12 Dairy Lane",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	session, got, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user.ID, session.UserID)
	assert.Equal(t, user.ID, got.ID)

	_, _, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "secret123")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, time.Hour)

	_, err := svc.Register(ctx, service.RegisterParams{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, service.RegisterParams{
		Username: "alice", Email: "other@example.com", Password: "secret123",
	})
	assert.ErrorIs(t, err, entities.ErrUserExists)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, time.Hour)

	user, err := svc.Register(ctx, service.RegisterParams{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	session, _, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	auth, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, auth.UserID)
	assert.Equal(t, "alice", auth.Username)
	assert.False(t, auth.IsAdmin)

	require.NoError(t, svc.Logout(ctx, session.Token))

	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestAuthService_Authenticate_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, -time.Minute)

	_, err := svc.Register(ctx, service.RegisterParams{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	session, _, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	// the expired session is dropped, a second attempt fails the same way
	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, time.Hour)

	_, err := svc.Register(ctx, service.RegisterParams{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	session, _, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, session.Token, "secret123", "newsecret"))

	// the session is dropped, the caller has to log in again
	_, err = svc.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)

	_, _, err = svc.Login(ctx, "alice", "secret123")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "alice", "newsecret")
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_WrongOldPassword(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, time.Hour)

	_, err := svc.Register(ctx, service.RegisterParams{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	session, _, err := svc.Login(ctx, "alice", "secret123")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, session.Token, "wrong", "newsecret")
	assert.ErrorIs(t, err, entities.ErrInvalidCredentials)

	// nothing changed, the old password and session still work
	_, err = svc.Authenticate(ctx, session.Token)
	assert.NoError(t, err)
	_, _, err = svc.Login(ctx, "alice", "secret123")
	assert.NoError(t, err)
}

func TestAuthService_ChangePassword_UnknownToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, time.Hour)

	err := svc.ChangePassword(ctx, "no-such-token", "secret123", "newsecret")
	assert.ErrorIs(t, err, entities.ErrSessionNotFound)
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, time.Hour)

	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "admin@example.com", "admin123"))
	// second call is a no-op
	require.NoError(t, svc.EnsureAdmin(ctx, "admin", "admin@example.com", "admin123"))

	session, _, err := svc.Login(ctx, "admin", "admin123")
	require.NoError(t, err)

	auth, err := svc.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.True(t, auth.IsAdmin)

	_, err = svc.Register(ctx, service.RegisterParams{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "alice", customers[0].Username)
}
