package ticket

import (
	"errors"
	"log/slog"
	"time"
)

const (
	storeAttempts     = 3
	storeInitialDelay = 100 * time.Millisecond
)

// withRetry runs a store operation with a small bounded retry and
// exponential backoff. Schema mismatches are permanent and not retried.
func withRetry(name string, operation func() error) error {
	var err error
	delay := storeInitialDelay

	for attempt := 1; attempt <= storeAttempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}

		var missing *MissingColumnError
		if errors.As(err, &missing) {
			return err
		}

		if attempt == storeAttempts {
			break
		}
		slog.Warn("Store operation failed, retrying",
			"operation", name,
			"attempt", attempt,
			"delay", delay,
			"error", err,
		)
		time.Sleep(delay)
		delay *= 2
	}
	return err
}
