package errors

import (
	stderr "errors"
	"fmt"
)

// CellOutOfRangeError indicates that a cell index is outside [0, cellCount).
// The document is left unmodified.
type CellOutOfRangeError struct {
	Index int
	Count int
}

// Error is an implementation of the error interface.
func (e *CellOutOfRangeError) Error() string {
	return fmt.Sprintf("cell index %d out of range, notebook has %d cells", e.Index, e.Count)
}

// IsCellOutOfRange reports whether CellOutOfRangeError is part of the error chain.
func IsCellOutOfRange(e error) bool {
	var target *CellOutOfRangeError
	return stderr.As(e, &target)
}

// NotebookNotFoundError indicates that a notebook file does not exist.
type NotebookNotFoundError struct {
	Name string
}

// Error is an implementation of the error interface.
func (e *NotebookNotFoundError) Error() string {
	return fmt.Sprintf("notebook %q not found", e.Name)
}

// NotebookExistsError indicates that a create would overwrite an existing notebook.
type NotebookExistsError struct {
	Name string
}

// Error is an implementation of the error interface.
func (e *NotebookExistsError) Error() string {
	return fmt.Sprintf("notebook %q already exists", e.Name)
}

// ActiveNotebookError indicates an attempt to delete the currently active
// notebook. The caller must switch away from it first.
type ActiveNotebookError struct {
	Name string
}

// Error is an implementation of the error interface.
func (e *ActiveNotebookError) Error() string {
	return fmt.Sprintf("cannot delete currently active notebook %q, switch to another notebook first", e.Name)
}

// PersistenceError indicates that writing the document to storage failed
// after a successful in-memory mutation. The mutation is not rolled back.
type PersistenceError struct {
	Path string
	Err  error
}

// Error is an implementation of the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving notebook %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying write error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether PersistenceError is part of the error chain.
func IsPersistence(e error) bool {
	var target *PersistenceError
	return stderr.As(e, &target)
}
