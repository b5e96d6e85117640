package trivia

import (
	"errors"
	"net/http"
)

// Failure kinds returned by Service operations. Handlers translate each kind
// to the status code documented for their endpoint.
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrStore         = errors.New("store failure")
	ErrMalformedBody = errors.New("malformed request body")
)

// statusMap is the per-endpoint translation of failure kinds to HTTP statuses.
type statusMap struct {
	malformed int
	invalid   int
	notFound  int
	store     int
}

var (
	listStatuses = statusMap{
		malformed: http.StatusBadRequest,
		invalid:   http.StatusUnprocessableEntity,
		notFound:  http.StatusNotFound,
		store:     http.StatusInternalServerError,
	}
	deleteStatuses = statusMap{
		malformed: http.StatusBadRequest,
		invalid:   http.StatusUnprocessableEntity,
		notFound:  http.StatusUnprocessableEntity,
		store:     http.StatusUnprocessableEntity,
	}
	createStatuses = statusMap{
		malformed: http.StatusBadRequest,
		invalid:   http.StatusUnprocessableEntity,
		notFound:  http.StatusUnprocessableEntity,
		store:     http.StatusUnprocessableEntity,
	}
	searchStatuses = statusMap{
		malformed: http.StatusBadRequest,
		invalid:   http.StatusNotFound,
		notFound:  http.StatusNotFound,
		store:     http.StatusInternalServerError,
	}
	categoryQuestionStatuses = statusMap{
		malformed: http.StatusBadRequest,
		invalid:   http.StatusNotFound,
		notFound:  http.StatusNotFound,
		store:     http.StatusNotFound,
	}
	// Every quiz failure, including a body that does not parse, is a 422.
	quizStatuses = statusMap{
		malformed: http.StatusUnprocessableEntity,
		invalid:   http.StatusUnprocessableEntity,
		notFound:  http.StatusUnprocessableEntity,
		store:     http.StatusUnprocessableEntity,
	}
)

func (m statusMap) statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMalformedBody):
		return m.malformed
	case errors.Is(err, ErrInvalidInput):
		return m.invalid
	case errors.Is(err, ErrNotFound):
		return m.notFound
	case errors.Is(err, ErrStore):
		return m.store
	default:
		return http.StatusInternalServerError
	}
}
