package tasks

import (
	"errors"
	"net/http"
)

// Domain errors for task operations.
var ErrNotFound = errors.New("task not found")

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
