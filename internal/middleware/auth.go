package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/dairy-service/internal/entities"
	"github.com/SergeyBogomolovv/dairy-service/pkg/utils"
)

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entities.AuthContext, error)
}

type authKey struct{}

// AuthFromContext returns the AuthContext stored by the Auth middleware.
func AuthFromContext(ctx context.Context) (entities.AuthContext, bool) {
	auth, ok := ctx.Value(authKey{}).(entities.AuthContext)
	return auth, ok
}

// Auth resolves the bearer token into an AuthContext and stores it in the
// request context. Requests without a valid token get 401.
func Auth(logger *slog.Logger, authenticator Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				utils.WriteError(w, "missing authorization token", http.StatusUnauthorized)
				return
			}

			auth, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				logger.Debug("authentication failed", slog.Any("error", err))
				utils.WriteError(w, "invalid or expired session", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), authKey{}, auth)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin callers. Must run after Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth, ok := AuthFromContext(r.Context())
		if !ok || !auth.IsAdmin {
			utils.WriteError(w, "admin access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
