package model

import (
	"errors"
	"fmt"
	"net/http"
)

// CMSError is the base error of the cms domain.
type CMSError struct {
	Code    string // unique code, e.g. "ARTICLE_NOT_FOUND"
	Message string // human readable, safe to show to clients
	Err     error  // underlying error, never sent to clients
}

func (e *CMSError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CMSError) Unwrap() error {
	return e.Err
}

// Is matches on Code so wrapped copies of a sentinel still compare equal.
func (e *CMSError) Is(target error) bool {
	t, ok := target.(*CMSError)
	return ok && t.Code == e.Code
}

// ============================================
// SENTINEL ERRORS
// ============================================

var (
	ErrArticleNotFound      = &CMSError{Code: "ARTICLE_NOT_FOUND", Message: "Article not found"}
	ErrNewsNotFound         = &CMSError{Code: "NEWS_NOT_FOUND", Message: "News not found"}
	ErrProfileNotFound      = &CMSError{Code: "PROFILE_NOT_FOUND", Message: "Profile not found"}
	ErrPracticeAreaNotFound = &CMSError{Code: "PRACTICE_AREA_NOT_FOUND", Message: "Practice area not found"}
	ErrUnknownSheet         = &CMSError{Code: "UNKNOWN_SHEET", Message: "Unknown sheet"}
	ErrWriteUnsupported     = &CMSError{Code: "WRITE_UNSUPPORTED", Message: "Content source does not accept writes"}
	ErrInvalidCredentials   = &CMSError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password"}
)

// NewWriteError wraps a failed write against the content source.
func NewWriteError(action string, err error) *CMSError {
	return &CMSError{
		Code:    "WRITE_FAILED",
		Message: fmt.Sprintf("Failed to %s content", action),
		Err:     err,
	}
}

// GetHTTPStatusCode maps a domain error to an HTTP status.
func GetHTTPStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrArticleNotFound),
		errors.Is(err, ErrNewsNotFound),
		errors.Is(err, ErrProfileNotFound),
		errors.Is(err, ErrPracticeAreaNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnknownSheet):
		return http.StatusBadRequest
	case errors.Is(err, ErrWriteUnsupported):
		return http.StatusNotImplemented
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		var ce *CMSError
		if errors.As(err, &ce) && ce.Code == "WRITE_FAILED" {
			return http.StatusBadGateway
		}
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the client-safe message of err.
func PublicMessage(err error) string {
	var ce *CMSError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return "Internal server error"
}
