package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrDisabled marks a provider that has no API key configured. Callers
// treat it as a soft feature-disable, never as a failure.
var ErrDisabled = errors.New("provider disabled: no api key configured")

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

// QuotaError marks a provider whose usage quota is exhausted. Unlike a
// transient rate limit it will not clear on retry, so callers degrade to
// an empty result instead of backing off.
type QuotaError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *QuotaError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider quota exhausted"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsQuotaError attempts to unwrap an error into a QuotaError.
func AsQuotaError(err error) (*QuotaError, bool) {
	var qErr *QuotaError
	if errors.As(err, &qErr) {
		return qErr, true
	}
	return nil, false
}
