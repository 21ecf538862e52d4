package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/harlowgray/lexica-api/internal/api/shared"
	"github.com/harlowgray/lexica-api/internal/service/auth"
)

// AuthMiddleware handles bearer token authentication for protected
// routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given token
// service.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenService: tokenService}
}

// Authenticate validates the Authorization header and stores the
// consumer name in the request context. Requests without a valid
// bearer token get a 401 response.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header must use Bearer scheme")
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			var message string
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				message = "Token expired"
			case errors.Is(err, auth.ErrTokenNotYetValid):
				message = "Token not yet valid"
			default:
				message = "Invalid token"
			}
			shared.RespondWithError(w, r, http.StatusUnauthorized, message)
			return
		}

		ctx := context.WithValue(r.Context(), shared.ConsumerContextKey, claims.Consumer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
