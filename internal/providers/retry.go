package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"courtside/internal/logging"
)

const (
	defaultRetryAttempts    = 3
	defaultInitialBackoff   = 200 * time.Millisecond
	defaultMaxRetryInterval = 2 * time.Second
)

// Retry runs fn with exponential backoff. Quota exhaustion and disabled
// providers are permanent conditions and short-circuit immediately.
func Retry[T any](ctx context.Context, logger *slog.Logger, provider string, fn func() (T, error)) (T, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = defaultInitialBackoff
	policy.MaxInterval = defaultMaxRetryInterval

	attempt := 0
	operation := func() (T, error) {
		attempt++
		result, err := fn()
		if err == nil {
			return result, nil
		}
		if errors.Is(err, ErrDisabled) {
			return result, backoff.Permanent(err)
		}
		if _, ok := AsQuotaError(err); ok {
			return result, backoff.Permanent(err)
		}
		logging.Warn(logger, "provider fetch retry",
			logging.FieldProvider, provider,
			"attempt", attempt,
			"error", err,
		)
		return result, err
	}

	return backoff.RetryWithData(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, defaultRetryAttempts-1), ctx))
}
