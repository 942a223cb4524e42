package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTokenExpired indicates the configured API token is a JWT whose expiry
// has passed. The request is never issued; the user must re-authenticate.
var ErrTokenExpired = errors.New("API token is expired")

// Error represents a transport-level failure: an unreachable host, a bad
// base URL, or an unreadable response.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job api error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("job api error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// APIError represents a rejection by the remote API: a server-side
// validation failure, a missing record, or an auth problem. The message is
// the server's, surfaced verbatim for the user.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("job api rejected request %s: HTTP %d: %s", e.RequestID, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("job api: HTTP %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// decodeAPIError builds an APIError from an error response. The API reports
// failures as {"message": "..."}; anything else falls back to the status
// text so the caller always gets a displayable message.
func decodeAPIError(resp *http.Response, requestID string) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		RequestID:  requestID,
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		apiErr.Message = payload.Message
	}
	return apiErr
}
