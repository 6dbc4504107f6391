package errors

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kaenova/prompty/client/internal/types"
)

const (
	msgInvalidAPIKey    = "Invalid API key"
	msgNotFoundFormat   = "Agent or prompt not found: %s"
	msgNotFoundFallback = "Not found"
	msgServerError      = "Server error occurred"
	msgUnexpectedFormat = "Unexpected error: %d"
	msgNetworkFormat    = "Network error: %s"
)

// ClassifyHTTPError maps a non-200 response to its failure kind:
//   - 401 is an authentication failure
//   - 404 is not-found, detailed by the body's "error" field when present
//   - 500-599 are server failures
//   - everything else is unexpected
func ClassifyHTTPError(statusCode int, body []byte) *Error {
	e := &Error{StatusCode: statusCode, Body: string(body)}
	switch {
	case statusCode == http.StatusUnauthorized:
		e.Kind = KindAuthentication
		e.Message = msgInvalidAPIKey
	case statusCode == http.StatusNotFound:
		e.Kind = KindNotFound
		e.Message = fmt.Sprintf(msgNotFoundFormat, notFoundDetail(body))
	case statusCode >= 500 && statusCode < 600:
		e.Kind = KindServer
		e.Message = msgServerError
	default:
		e.Kind = KindUnexpected
		e.Message = fmt.Sprintf(msgUnexpectedFormat, statusCode)
	}
	return e
}

// NewNetworkError creates a classified error for failures that left the
// caller without a usable response: transport errors, unreadable or
// undecodable bodies.
func NewNetworkError(err error) *Error {
	return &Error{
		Kind:       KindNetwork,
		Message:    fmt.Sprintf(msgNetworkFormat, err),
		Underlying: err,
	}
}

// notFoundDetail extracts the "error" field of a 404 body. Bodies that are
// not JSON objects, or whose "error" is missing, null or structured, get the
// fallback.
func notFoundDetail(body []byte) string {
	var er types.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return msgNotFoundFallback
	}
	if detail, ok := er.Detail(); ok {
		return detail
	}
	return msgNotFoundFallback
}
