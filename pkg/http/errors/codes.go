package errors

import "net/http"

// Canonical messages for the statuses the API produces.
const (
	MsgBadRequest          = "bad request sent, please review your request"
	MsgNotFound            = "Page or resource not found"
	MsgMethodNotAllowed    = "method not allowed for this resource"
	MsgUnprocessableEntity = "Request entity cannot be processed"
	MsgInternalError       = "internal server error"
)

// MessageFor returns the canonical message for status.
func MessageFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MsgUnprocessableEntity
	case http.StatusInternalServerError:
		return MsgInternalError
	default:
		return http.StatusText(status)
	}
}
