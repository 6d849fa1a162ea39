package turso

import (
	"context"
	"strings"
	"time"
)

const streamRetries = 2

// IsStreamError reports whether err is a libsql "stream not found" error,
// raised when a remote server dropped the connection's stream.
func IsStreamError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "stream not found")
}

// withRetry runs fn again, up to maxRetries times, while it fails with a
// stream error. Other errors are returned immediately.
func withRetry[T any](ctx context.Context, maxRetries int, fn func() (T, error)) (T, error) {
	var result T
	var err error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		result, err = fn()
		if err == nil {
			return result, nil
		}
		if !IsStreamError(err) || attempt == maxRetries {
			return result, err
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(10 * time.Millisecond):
		}
	}
	return result, err
}
