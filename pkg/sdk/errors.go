package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotLoggedIn is returned when an operation requires stored credentials and
// none exist.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx response decoded from the backend's error envelope.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
	Details    map[string]any
}

func (e *APIError) Error() string {
	if e.Message != "" {
		if e.Code != "" {
			return fmt.Sprintf("api error %d (%s): %s", e.HTTPStatus, e.Code, e.Message)
		}
		return fmt.Sprintf("api error %d: %s", e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("api error %d", e.HTTPStatus)
}

// IsUnauthorized reports whether err is an HTTP 401 from the backend.
// Transport failures carry no status and never qualify.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.HTTPStatus == http.StatusUnauthorized
}

// IsTransient reports whether err is a transport-level failure for which no
// response was received. Callers must treat these as unknown, not as auth
// failures.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	return !errors.As(err, &apiErr)
}

// ErrorMessage extracts a short human-readable message for display: the
// envelope message when present, otherwise a generic fallback.
func ErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong. Please try again."
}
