package api

import (
	"errors"
	"net/http"

	"github.com/harlowgray/lexica-api/internal/domain"
	"github.com/harlowgray/lexica-api/internal/service/auth"
)

// MapErrorToStatusCode maps domain errors to appropriate HTTP status
// codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownNoun):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidDescriptor):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicateNoun):
		return http.StatusConflict
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-safe message for the given
// error. Internal details never leak to the response body.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownNoun):
		return "Noun not found"
	case errors.Is(err, domain.ErrInvalidDescriptor):
		return "Invalid descriptor"
	case errors.Is(err, domain.ErrDuplicateNoun):
		return "Noun already registered"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid token"
	default:
		return "An internal error occurred"
	}
}
