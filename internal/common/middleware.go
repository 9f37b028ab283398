package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"gojournal/internal/apperr"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

func WithUserID(ctx context.Context, userID uint64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated caller injected by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(userIDKey).(uint64)
	return id, ok && id != 0
}

func UsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}

// AuthMiddleware reads "Authorization: Bearer <token>", validates it and
// injects the caller identity into the request context.
func AuthMiddleware(tokens *JWTManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, nil, apperr.Unauthorized("authorization required"))
				return
			}

			parts := strings.Fields(header)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				WriteError(w, nil, apperr.Unauthorized("invalid auth header"))
				return
			}

			claims, err := tokens.ValidToken(parts[1])
			if err != nil {
				WriteError(w, nil, apperr.Unauthorized("invalid or expired token"))
				return
			}

			ctx := WithUserID(r.Context(), claims.UserID)
			ctx = context.WithValue(ctx, usernameKey, claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
