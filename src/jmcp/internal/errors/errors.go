// Package errors defines the error taxonomy surfaced at the tool boundary.
// Expected conditions (bad index, unreachable server, catalog conflicts) are
// typed so callers can distinguish them from unexpected faults.
package errors

import stderr "errors"

// New returns an error that formats as the given text.
// Each call to New returns a distinct error value even if the text is identical.
func New(msg string) error {
	return stderr.New(msg)
}

var (
	// NoSessionOnWireError reports that the request carries no session UUID.
	NoSessionOnWireError = New("session UUID is required")
	// NoActiveNotebookError reports that no notebook has been loaded yet.
	NoActiveNotebookError = New("no notebook is currently loaded")
)

// IsBadRequest reports whether the error is a bad request from the caller.
func IsBadRequest(e error) bool {
	return stderr.Is(e, NoSessionOnWireError) || stderr.Is(e, NoActiveNotebookError)
}
