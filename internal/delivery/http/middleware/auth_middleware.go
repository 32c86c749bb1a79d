package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"hospital-patient-api/pkg/response"
	"hospital-patient-api/pkg/token"
)

type contextKey string

const (
	UserIDKey      contextKey = "user_id"
	BearerTokenKey contextKey = "bearer_token"
)

type AuthMiddleware struct {
	tokenStore token.Store
}

func NewAuthMiddleware(tokenStore token.Store) *AuthMiddleware {
	return &AuthMiddleware{tokenStore: tokenStore}
}

// Authenticate resolves the opaque bearer token to a principal before the
// handler runs. Any failure short-circuits with a 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Unauthenticated.")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Unauthenticated.")
			return
		}

		bearerToken := parts[1]

		userID, err := m.tokenStore.Resolve(r.Context(), bearerToken)
		if err != nil {
			if errors.Is(err, token.ErrTokenNotFound) {
				response.Unauthorized(w, "Unauthenticated.")
				return
			}
			response.InternalError(w, "Failed to validate token.", err, false)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		ctx = context.WithValue(ctx, BearerTokenKey, bearerToken)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the authenticated user ID from context
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetBearerTokenFromContext extracts the presented token from context
func GetBearerTokenFromContext(ctx context.Context) (string, bool) {
	bearerToken, ok := ctx.Value(BearerTokenKey).(string)
	return bearerToken, ok
}
