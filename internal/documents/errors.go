package documents

import (
	"errors"
	"net/http"
)

var (
	ErrNotFound     = errors.New("document not found")
	ErrMissingField = errors.New("required field missing")
	ErrInvalidYear  = errors.New("invalid year")
	ErrNotPDF       = errors.New("only PDF files are accepted")
	ErrFileTooLarge = errors.New("file exceeds maximum upload size")
)

var statusByError = []struct {
	err    error
	status int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{ErrMissingField, http.StatusBadRequest},
	{ErrInvalidYear, http.StatusBadRequest},
	{ErrNotPDF, http.StatusBadRequest},
}

// MapHTTPStatus returns the status for the first document error in err's
// chain, or 500 when none matches.
func MapHTTPStatus(err error) int {
	for _, m := range statusByError {
		if errors.Is(err, m.err) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}
