// Package retry provides simple exponential backoff retry logic for transient failures.
//
// # Overview
//
// This package offers a minimal retry mechanism with exponential backoff. In
// FifoKit it serves callers of the fifo package: the queue itself never waits
// or retries, so any retry-on-full or retry-on-empty policy lives at the call
// site, typically built on this package.
//
// # Core Functions
//
//   - Do: Execute function with retry and exponential backoff
//   - DoWithResult: Execute function with retry, returns both result and error
//
// # Configuration Presets
//
//   - DefaultConfig(): 3 attempts, 100ms-5s delay (normal operations)
//   - Quick(): 10 attempts, 50ms-1s delay (conditions that clear fast)
//
// # Usage Examples
//
// Retry a put against a queue that may be momentarily full:
//
//	err := retry.Do(ctx, retry.Quick(), func() error {
//	    return q.Put(entry)
//	})
//
// Retry with result:
//
//	entry, err := retry.DoWithResult(ctx, retry.DefaultConfig(), func() (fifo.Entry, error) {
//	    return q.Get()
//	})
//
// Mark an error so the loop stops immediately:
//
//	err := retry.Do(ctx, cfg, func() error {
//	    if badInput {
//	        return retry.NonRetryable(errInvalid)
//	    }
//	    return op()
//	})
//
// # Design Philosophy
//
// This package is intentionally minimal:
//
//   - No circuit breakers
//   - No metrics collection (instrument at the call site)
//   - No error classification (the errors package decides what is transient)
//   - Just exponential backoff with jitter
//
// # Context Cancellation
//
// All retry operations respect context cancellation and stop immediately when
// the context is cancelled, either during operation execution or during the
// backoff delay.
//
// # Thread Safety
//
// All functions are safe for concurrent use.
package retry
