package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/dairy-service/internal/handler/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, svc *mocks.MockAuthService) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewAuthHandler(logger, svc)
	r := chi.NewRouter()
	h.Init(r)
	return r
}

func TestAuthHandler_Register(t *testing.T) {
	validBody := `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "secret123",
		"phone": "1234567890",
		"address": "12 Dairy Lane"
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().
					Register(mock.Anything, mock.Anything).
					Return(entities.User{ID: "user-1", Username: "alice", Email: "alice@example.com"}, nil).
					Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"username":"alice"`,
		},
		{
			name:         "short password",
			body:         `{"username":"alice","email":"alice@example.com","password":"123","phone":"1","address":"a"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "invalid email",
			body:         `{"username":"alice","email":"not-an-email","password":"secret123","phone":"1","address":"a"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "duplicate user",
			body: validBody,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().
					Register(mock.Anything, mock.Anything).
					Return(entities.User{}, entities.ErrUserExists).
					Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"username or email already taken"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			r := newAuthRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	session := entities.Session{
		Token:     "session-token",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	user := entities.User{ID: "user-1", Username: "alice"}

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"username":"alice","password":"secret123"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().
					Login(mock.Anything, "alice", "secret123").
					Return(session, user, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"token":"session-token"`,
		},
		{
			name: "wrong password",
			body: `{"username":"alice","password":"wrong1"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().
					Login(mock.Anything, "alice", "wrong1").
					Return(entities.Session{}, entities.User{}, entities.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `"invalid username or password"`,
		},
		{
			name:         "missing fields",
			body:         `{"username":"alice"}`,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			r := newAuthRouter(t, svc)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAuthHandler_ChangePassword(t *testing.T) {
	validBody := `{"old_password":"secret123","new_password":"newsecret"}`

	testCases := []struct {
		name         string
		body         string
		token        string
		mockBehavior func(svc *mocks.MockAuthService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:  "success",
			body:  validBody,
			token: "session-token",
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().
					ChangePassword(mock.Anything, "session-token", "secret123", "newsecret").
					Return(nil).Once()
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "missing token",
			body:         validBody,
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusUnauthorized,
		},
		{
			name:         "short new password",
			body:         `{"old_password":"secret123","new_password":"123"}`,
			token:        "session-token",
			mockBehavior: func(svc *mocks.MockAuthService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:  "wrong old password",
			body:  validBody,
			token: "session-token",
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().
					ChangePassword(mock.Anything, "session-token", "secret123", "newsecret").
					Return(entities.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"current password is incorrect"`,
		},
		{
			name:  "expired session",
			body:  validBody,
			token: "stale-token",
			mockBehavior: func(svc *mocks.MockAuthService) {
				svc.EXPECT().
					ChangePassword(mock.Anything, "stale-token", "secret123", "newsecret").
					Return(entities.ErrSessionNotFound).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockAuthService(t)
			tc.mockBehavior(svc)

			r := newAuthRouter(t, svc)

			req := httptest.NewRequest(http.MethodPatch, "/auth/password", strings.NewReader(tc.body))
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		svc.EXPECT().Logout(mock.Anything, "session-token").Return(nil).Once()

		r := newAuthRouter(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer session-token")
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		svc := mocks.NewMockAuthService(t)
		r := newAuthRouter(t, svc)

		req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
		rr := httptest.NewRecorder()

		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
