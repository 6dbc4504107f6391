package client

import (
	apierrors "github.com/kaenova/prompty/client/internal/errors"
)

// Error is returned by every failed call. Kind tells which outcome occurred;
// StatusCode and Body carry the HTTP response when there was one.
type Error = apierrors.Error

// ErrorKind enumerates the failure outcomes.
type ErrorKind = apierrors.Kind

const (
	KindAuthentication = apierrors.KindAuthentication
	KindNotFound       = apierrors.KindNotFound
	KindServer         = apierrors.KindServer
	KindUnexpected     = apierrors.KindUnexpected
	KindNetwork        = apierrors.KindNetwork
)

// Re-export the kind sentinels so callers compare against a single symbol.
var (
	ErrAuthentication = apierrors.ErrAuthentication
	ErrNotFound       = apierrors.ErrNotFound
	ErrServer         = apierrors.ErrServer
	ErrUnexpected     = apierrors.ErrUnexpected
	ErrNetwork        = apierrors.ErrNetwork
)

// KindOf returns the failure kind of err, or 0 if err did not come from a Client.
func KindOf(err error) ErrorKind { return apierrors.KindOf(err) }

// IsRecoverable reports whether err is a server or network failure, which
// may clear on a later call. The client itself never retries.
func IsRecoverable(err error) bool { return apierrors.IsRecoverable(err) }
