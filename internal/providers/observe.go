package providers

import (
	"log/slog"
	"time"

	"courtside/internal/logging"
	"courtside/internal/metrics"
)

// Observe records one provider call in metrics and logs failures.
// Both logger and recorder are optional.
func Observe(logger *slog.Logger, recorder *metrics.Recorder, provider string, start time.Time, err error) {
	elapsed := time.Since(start)
	recorder.RecordProviderAttempt(provider, elapsed, err)

	if rl, ok := AsRateLimitError(err); ok {
		recorder.RecordRateLimit(provider, rl.RetryAfter)
	}

	if err != nil {
		logging.Warn(logger, "provider call failed",
			logging.FieldProvider, provider,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"error", err,
		)
	}
}
