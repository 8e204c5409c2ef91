package errors

import (
	stderr "errors"
	"fmt"
	"time"
)

// ServerUnreachableError indicates that the Jupyter server did not answer the
// liveness probe. Surfaced before any document state is touched.
type ServerUnreachableError struct {
	URL string
	Err error
}

// Error is an implementation of the error interface.
func (e *ServerUnreachableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot connect to Jupyter server at %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("cannot connect to Jupyter server at %s", e.URL)
}

// Unwrap returns the underlying transport error, if any.
func (e *ServerUnreachableError) Unwrap() error {
	return e.Err
}

// IsUnreachable reports whether ServerUnreachableError is part of the error chain.
func IsUnreachable(e error) bool {
	var target *ServerUnreachableError
	return stderr.As(e, &target)
}

// KernelCreationError indicates that the server rejected a kernel creation
// request. Status and body are captured for diagnostics.
type KernelCreationError struct {
	Status int
	Body   string
	Err    error
}

// Error is an implementation of the error interface.
func (e *KernelCreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("creating kernel: %v", e.Err)
	}
	return fmt.Sprintf("creating kernel: server returned %d: %s", e.Status, e.Body)
}

// Unwrap returns the underlying transport error, if any.
func (e *KernelCreationError) Unwrap() error {
	return e.Err
}

// ExecutionTimeoutError indicates that the streaming receive loop exceeded
// its bound before the kernel sent a terminal reply. Partial outputs
// collected before the bound are still committed.
type ExecutionTimeoutError struct {
	Wait time.Duration
}

// Error is an implementation of the error interface.
func (e *ExecutionTimeoutError) Error() string {
	return fmt.Sprintf("no kernel message received within %s", e.Wait)
}

// IsExecutionTimeout reports whether ExecutionTimeoutError is part of the error chain.
func IsExecutionTimeout(e error) bool {
	var target *ExecutionTimeoutError
	return stderr.As(e, &target)
}
