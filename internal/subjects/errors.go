package subjects

import (
	"errors"
	"net/http"
)

var ErrNotFound = errors.New("subject not found")

// MapHTTPStatus maps subject domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
