package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/errs"
)

// SessionResolver turns a bearer token into the caller's session.
type SessionResolver interface {
	Resume(ctx context.Context, token string) (*access.Session, error)
}

type contextKey string

const UserContextKey contextKey = "session"

func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			session, err := resolver.Resume(r.Context(), tokenStr)
			if err != nil {
				switch {
				case errors.Is(err, errs.ErrInvalidToken), errors.Is(err, errs.ErrUserNotFound):
					http.Error(w, "unauthorized", http.StatusUnauthorized)
				case errors.Is(err, errs.ErrInvalidRole):
					http.Error(w, "account role is not recognised", http.StatusForbidden)
				default:
					http.Error(w, "internal error", http.StatusInternalServerError)
				}
				return
			}

			ctx := context.WithValue(r.Context(), UserContextKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFromContext returns nil outside AuthMiddleware.
func SessionFromContext(ctx context.Context) *access.Session {
	s, _ := ctx.Value(UserContextKey).(*access.Session)
	return s
}
