package reviews

import (
	"errors"
	"net/http"
)

// Domain errors for review journal operations.
var (
	ErrCaseNotFound           = errors.New("case not found")
	ErrEmptyComment           = errors.New("comment text is required")
	ErrDecisionRequired       = errors.New("please select a decision")
	ErrRecommendationRequired = errors.New("please provide a recommendation")
	ErrInvalidDecision        = errors.New("decision must be validate or reject")
	ErrDuplicate              = errors.New("journal entry already exists")
)

// MapHTTPStatus maps review domain errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrCaseNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrEmptyComment),
		errors.Is(err, ErrDecisionRequired),
		errors.Is(err, ErrRecommendationRequired),
		errors.Is(err, ErrInvalidDecision):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
