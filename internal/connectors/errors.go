package connectors

import (
	"errors"
	"net/http"
)

// Domain errors for connector operations.
var (
	ErrMissingToken     = errors.New("provider token not configured")
	ErrInvalidSignature = errors.New("invalid signature")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidSignature) {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}
