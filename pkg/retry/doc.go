// Package retry provides retry logic with configurable backoff strategies.
//
// Transient UniProt API failures (network errors, 5xx responses) are retried
// with exponential backoff and jitter; non-retryable errors such as 4xx
// responses fail immediately. Retry waits respect context cancellation.
//
//	cfg := retry.DefaultConfig()
//	cfg.MaxAttempts = 5
//	err := retry.Do(func() error { return fetchPage() }, cfg)
package retry
