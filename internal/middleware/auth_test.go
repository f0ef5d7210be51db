package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/and161185/clubhouse/internal/access"
	"github.com/and161185/clubhouse/internal/errs"
	"github.com/and161185/clubhouse/internal/model"
)

type resolverFunc func(ctx context.Context, token string) (*access.Session, error)

func (f resolverFunc) Resume(ctx context.Context, token string) (*access.Session, error) {
	return f(ctx, token)
}

func TestAuthMiddleware(t *testing.T) {
	member := &access.Session{TokenID: "t1", Identity: model.Identity{ID: "u4", Role: model.RoleMember}}

	tests := []struct {
		name           string
		authHeader     string
		resolver       SessionResolver
		expectedStatus int
	}{
		{
			name:           "no header",
			authHeader:     "",
			resolver:       resolverFunc(nil),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "not bearer",
			authHeader:     "Basic dXNlcjpwYXNz",
			resolver:       resolverFunc(nil),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer invalidtoken",
			resolver: resolverFunc(func(ctx context.Context, token string) (*access.Session, error) {
				return nil, errs.ErrInvalidToken
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "user not found",
			authHeader: "Bearer good",
			resolver: resolverFunc(func(ctx context.Context, token string) (*access.Session, error) {
				return nil, errs.ErrUserNotFound
			}),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown role",
			authHeader: "Bearer good",
			resolver: resolverFunc(func(ctx context.Context, token string) (*access.Session, error) {
				return nil, fmt.Errorf("%w: SUPERUSER", errs.ErrInvalidRole)
			}),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:       "storage error",
			authHeader: "Bearer good",
			resolver: resolverFunc(func(ctx context.Context, token string) (*access.Session, error) {
				return nil, errors.New("some db error")
			}),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:       "ok",
			authHeader: "Bearer good",
			resolver: resolverFunc(func(ctx context.Context, token string) (*access.Session, error) {
				if token != "good" {
					t.Errorf("unexpected token %q", token)
				}
				return member, nil
			}),
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rr := httptest.NewRecorder()
			mw := AuthMiddleware(tt.resolver)
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if SessionFromContext(r.Context()) != member {
					t.Error("session not in context")
				}
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestSessionFromContextEmpty(t *testing.T) {
	if SessionFromContext(context.Background()) != nil {
		t.Error("expected nil session")
	}
}
