package feed

import (
	"errors"
	"fmt"
)

// ErrFeedUnavailable indicates no usable feed client is configured.
var ErrFeedUnavailable = errors.New("feed unavailable")

// StatusError captures an unexpected upstream HTTP status.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("feed %s: unexpected status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("feed %s: unexpected status %d", e.Endpoint, e.StatusCode)
}

// AsStatusError attempts to unwrap an error into a StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr, true
	}
	return nil, false
}
