package dropbox

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrEmptyAccessToken is returned by NewClient when no token was supplied.
var ErrEmptyAccessToken = errors.New("access token is required")

// APIError is any non-2xx answer from the Dropbox API. Summary carries the
// "error_summary" field of the JSON error body, e.g. "from_lookup/not_found/"
// or "to/conflict/file/". Classification helpers below inspect it the way the
// API documents: summaries are slash-separated tag paths.
type APIError struct {
	StatusCode int
	Summary    string
	// RetryAfter is the server-suggested wait in seconds on 429 responses.
	RetryAfter int
}

func (e *APIError) Error() string {
	if e.Summary != "" {
		return fmt.Sprintf("dropbox: %s (status %d)", e.Summary, e.StatusCode)
	}
	return fmt.Sprintf("dropbox: API error (status %d)", e.StatusCode)
}

// IsAuth reports whether the credential was rejected.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsRateLimit reports whether the API throttled the request.
func (e *APIError) IsRateLimit() bool {
	return e.StatusCode == http.StatusTooManyRequests || strings.HasPrefix(e.Summary, "too_many_requests")
}

// IsNotFound reports whether a path lookup failed, for any of the lookup
// shapes the API uses (path/, path_lookup/, from_lookup/).
func (e *APIError) IsNotFound() bool {
	return strings.Contains(e.Summary, "not_found")
}

// IsConflict reports whether the destination already exists.
func (e *APIError) IsConflict() bool {
	return strings.Contains(e.Summary, "conflict")
}

// AsAPIError unwraps err to an *APIError, or nil if it is not one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}
