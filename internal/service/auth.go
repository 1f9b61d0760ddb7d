package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, u entities.User) error
	GetUserByUsername(ctx context.Context, username string) (entities.User, error)
	GetUserByID(ctx context.Context, id string) (entities.User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	ListCustomers(ctx context.Context) ([]entities.User, error)
}

type SessionRepo interface {
	CreateSession(ctx context.Context, s entities.Session) error
	GetSession(ctx context.Context, token string) (entities.Session, error)
	DeleteSession(ctx context.Context, token string) error
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
	Phone    string
	Address  string
}

type authService struct {
	logger     *slog.Logger
	users      UserRepo
	sessions   SessionRepo
	sessionTTL time.Duration
}

func NewAuthService(logger *slog.Logger, users UserRepo, sessions SessionRepo, sessionTTL time.Duration) *authService {
	return &authService{
		logger:     logger.With(slog.String("service", "auth")),
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Register(ctx context.Context, params RegisterParams) (entities.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entities.User{
		ID:           uuid.NewString(),
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(hash),
		Phone:        params.Phone,
		Address:      params.Address,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	s.logger.Debug("user registered", slog.String("username", user.Username))
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (entities.Session, entities.User, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if errors.Is(err, entities.ErrUserNotFound) {
		return entities.Session{}, entities.User{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return entities.Session{}, entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return entities.Session{}, entities.User{}, entities.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	session := entities.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.CreateSession(ctx, session); err != nil {
		return entities.Session{}, entities.User{}, fmt.Errorf("failed to create session: %w", err)
	}
	return session, user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.DeleteSession(ctx, token)
}

// Authenticate resolves a bearer token into the caller's identity.
func (s *authService) Authenticate(ctx context.Context, token string) (entities.AuthContext, error) {
	session, err := s.resolveSession(ctx, token)
	if err != nil {
		return entities.AuthContext{}, err
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		return entities.AuthContext{}, err
	}

	return entities.AuthContext{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}

// ChangePassword verifies the caller's current password, stores a new hash
// and drops the session, so the caller has to log in again.
func (s *authService) ChangePassword(ctx context.Context, token, oldPassword, newPassword string) error {
	session, err := s.resolveSession(ctx, token)
	if err != nil {
		return err
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return entities.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		s.logger.Error("failed to delete session", slog.Any("error", err))
	}

	s.logger.Debug("password changed", slog.String("username", user.Username))
	return nil
}

func (s *authService) resolveSession(ctx context.Context, token string) (entities.Session, error) {
	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}

	if session.Expired(time.Now().UTC()) {
		if err := s.sessions.DeleteSession(ctx, token); err != nil {
			s.logger.Error("failed to delete expired session", slog.Any("error", err))
		}
		return entities.Session{}, entities.ErrSessionNotFound
	}

	return session, nil
}

// ListCustomers returns non-admin accounts for the admin panel.
func (s *authService) ListCustomers(ctx context.Context) ([]entities.User, error) {
	users, err := s.users.ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return users, nil
}

// EnsureAdmin creates the bootstrap admin account if it does not exist yet.
func (s *authService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, entities.ErrUserNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := entities.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	s.logger.Info("admin user created", slog.String("username", username))
	return nil
}
