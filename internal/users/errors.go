package users

import (
	"errors"
	"net/http"
)

var ErrNotFound = errors.New("user not found")

// MapHTTPStatus maps user domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
