// Package errors classifies Prompty API call failures.
// Every failed call maps to exactly one Kind.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies which of the five failure outcomes a call produced.
type Kind int

const (
	// KindAuthentication: the service rejected the API key (HTTP 401).
	KindAuthentication Kind = iota + 1
	// KindNotFound: the agent, or its active prompt, does not exist (HTTP 404).
	KindNotFound
	// KindServer: the service failed (HTTP 5xx).
	KindServer
	// KindUnexpected: any other HTTP status.
	KindUnexpected
	// KindNetwork: no usable response was received.
	KindNetwork
)

// Sentinels matched by (*Error).Is, one per Kind.
var (
	ErrAuthentication = stderrors.New("authentication error")
	ErrNotFound       = stderrors.New("not found error")
	ErrServer         = stderrors.New("server error")
	ErrUnexpected     = stderrors.New("unexpected error")
	ErrNetwork        = stderrors.New("network error")
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "AuthenticationError"
	case KindNotFound:
		return "NotFoundError"
	case KindServer:
		return "ServerError"
	case KindUnexpected:
		return "UnexpectedError"
	case KindNetwork:
		return "NetworkError"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Recoverable reports whether a later identical call may succeed.
// 5xx and network failures are transient; the rest need caller action.
func (k Kind) Recoverable() bool {
	return k == KindServer || k == KindNetwork
}

func (k Kind) sentinel() error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindNotFound:
		return ErrNotFound
	case KindServer:
		return ErrServer
	case KindUnexpected:
		return ErrUnexpected
	case KindNetwork:
		return ErrNetwork
	default:
		return nil
	}
}

// Error is a classified failure of a prompt request.
type Error struct {
	Kind       Kind
	StatusCode int    // HTTP status code (0 for network errors)
	Body       string // Response body, if one was read
	Message    string
	Underlying error // Transport or decode error for KindNetwork
}

// Error implements the error interface.
func (e *Error) Error() string { return e.Message }

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// Is matches the sentinel of e's kind, so errors.Is(err, ErrServer) works.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsRecoverable returns true if err is a classified error of a transient kind.
func IsRecoverable(err error) bool {
	return KindOf(err).Recoverable()
}
