package sheets

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when no content endpoint is set.
	ErrNotConfigured = errors.New("sheets: content source not configured")
	// ErrContentType is returned when the remote answers with something other than JSON.
	ErrContentType = errors.New("sheets: unexpected content type")
	// ErrSheetNotFound is returned by sources that can tell a table is missing.
	ErrSheetNotFound = errors.New("sheets: sheet not found")
)

// StatusError carries a non-2xx HTTP status from the web app.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheets: unexpected status %d", e.StatusCode)
}

// RemoteError is an envelope with success=false.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "sheets: remote reported failure"
	}
	return "sheets: remote reported failure: " + e.Message
}
