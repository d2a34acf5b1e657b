package augment

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"
)

// RetryPolicy bounds repeated attempts against the external capability.
// Zero values mean a single attempt with no pause.
type RetryPolicy struct {
	Retries int
	Backoff time.Duration
}

// CompleteWithRetry invokes the capability up to Retries+1 times, pausing
// Backoff between attempts. A response that fails validate counts as a
// failed attempt. ErrNotConfigured aborts immediately; retrying a disabled
// capability cannot succeed. The error return reports the last failure; the
// caller maps it to the fallback path rather than propagating it.
func CompleteWithRetry(ctx context.Context, capability Capability, systemRole, prompt string, policy RetryPolicy, validate func(json.RawMessage) error) (json.RawMessage, Usage, error) {
	attempts := policy.Retries + 1
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		raw, usage, err := capability.Complete(ctx, systemRole, prompt)
		if err == nil && validate != nil {
			err = validate(raw)
		}
		if err == nil {
			return raw, usage, nil
		}
		if errors.Is(err, ErrNotConfigured) {
			return nil, Usage{}, err
		}
		lastErr = err
		slog.Warn("augmentation call failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", attempts),
			slog.String("error", err.Error()))

		if attempt < attempts {
			select {
			case <-ctx.Done():
				return nil, Usage{}, ctx.Err()
			case <-time.After(policy.Backoff):
			}
		}
	}

	return nil, Usage{}, lastErr
}
