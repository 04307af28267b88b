package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/edgarceron/toptal-project/internal/domain"
	"github.com/edgarceron/toptal-project/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// Auth resolves the bearer token to a live user record and stores it in the
// request context. Disabled accounts are rejected here, before any handler.
func Auth(authService *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Missing or invalid token"}}`, http.StatusUnauthorized)
				return
			}

			user, err := authService.ResolveUser(r.Context(), strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				switch {
				case errors.Is(err, service.ErrTokenExpired):
					http.Error(w, `{"error":{"code":"TOKEN_EXPIRED","message":"Token has expired"}}`, http.StatusUnauthorized)
				case errors.Is(err, service.ErrAccountDisabled):
					http.Error(w, `{"error":{"code":"ACCOUNT_DISABLED","message":"Account is disabled"}}`, http.StatusForbidden)
				default:
					http.Error(w, `{"error":{"code":"UNAUTHORIZED","message":"Could not validate credentials"}}`, http.StatusUnauthorized)
				}
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRealtor guards routes that manage listings. Must run after Auth.
func RequireRealtor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if GetUser(r.Context()).Role != domain.RoleRealtor {
			http.Error(w, `{"error":{"code":"FORBIDDEN","message":"Only realtors can manage apartments"}}`, http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUser extracts the authenticated user from the request context.
func GetUser(ctx context.Context) *domain.User {
	return ctx.Value(userKey).(*domain.User)
}
