// Package common defines shared constants and sentinel errors used across
// the server layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Fault classes. Every import error wraps exactly one of them.
	ErrorBadRequest = errors.New("bad request")
	ErrorInternal   = errors.New("internal error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Import client faults.
	ErrOwnershipMismatch   = fmt.Errorf("%w: cipher encrypted for wrong user", ErrorBadRequest)
	ErrInvalidRelationship = fmt.Errorf("%w: folder relationship out of range", ErrorBadRequest)

	// Import internal faults.
	ErrSerialization = fmt.Errorf("%w: cipher data serialization failed", ErrorInternal)
	ErrStorage       = fmt.Errorf("%w: storage failure", ErrorInternal)
)

// IsClientFault reports whether err was caused by the request itself and
// may be shown to the caller verbatim.
func IsClientFault(err error) bool {
	return errors.Is(err, ErrorBadRequest)
}
