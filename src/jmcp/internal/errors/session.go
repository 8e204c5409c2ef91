package errors

import (
	stderr "errors"
	"fmt"

	"github.com/gofrs/uuid"
)

// SessionNotFoundError is a service domain error for a missing session.
type SessionNotFoundError struct {
	UUID uuid.UUID
}

// Error is an implementation of the error interface.
func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session %q not found", e.UUID)
}

// NotFoundSessionUUID returns a UUID and true if SessionNotFoundError is part
// of the error chain.
func NotFoundSessionUUID(e error) (_ uuid.UUID, ok bool) {
	var nf *SessionNotFoundError
	if !stderr.As(e, &nf) {
		return uuid.Nil, false
	}
	return nf.UUID, true
}
