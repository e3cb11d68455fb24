package approvals

import (
	"errors"
	"net/http"
)

// Domain errors for approval operations.
var ErrNotFound = errors.New("approval not found")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
