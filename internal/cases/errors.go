package cases

import (
	"errors"
	"net/http"
)

var ErrNotFound = errors.New("case not found")

// MapHTTPStatus maps case domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
