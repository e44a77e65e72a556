package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrStatNotFound reports that the upstream source has no value for the
// requested (player, metric) pair. Handlers convert it to a data-unavailable
// reply; it is not an infrastructure fault.
var ErrStatNotFound = errors.New("stat not found")

// ErrProviderUnavailable reports that no usable provider is configured or
// reachable. This is the one failure allowed to surface past the handlers.
var ErrProviderUnavailable = errors.New("provider unavailable")

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
