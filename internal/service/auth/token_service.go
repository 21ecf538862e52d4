// Package auth issues and validates the bearer tokens catalog
// consumers present on protected endpoints.
package auth

import (
	"context"
	"time"
)

// Claims holds the validated claims of a consumer token.
type Claims struct {
	// Consumer identifies the tool holding the token, e.g. "codegen"
	// or "docs-renderer".
	Consumer  string
	IssuedAt  time.Time
	ExpiresAt time.Time
	ID        string
}

// TokenService issues and validates consumer tokens.
type TokenService interface {
	// GenerateToken creates a signed token identifying the given
	// consumer.
	GenerateToken(ctx context.Context, consumer string) (string, error)

	// ValidateToken verifies a token and returns its claims. Returns
	// ErrExpiredToken, ErrTokenNotYetValid, or ErrInvalidToken on
	// failure.
	ValidateToken(ctx context.Context, token string) (*Claims, error)
}
