// Package errors provides standardized error handling patterns for FifoKit.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// The two FIFO state conditions, ErrFifoFull and ErrFifoEmpty, are the heart
// of the taxonomy. Both are ordinary, expected outcomes of normal operation
// and are classified Transient: the opposite operation clears the condition,
// so the caller may retry, drop the item, or apply backpressure. Neither
// leaves the queue modified.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if err := q.Put(entry); err != nil {
//	    if errors.IsFull(err) {
//	        // drain one and retry, or drop
//	    }
//	}
//
// Wrap errors with context for debugging:
//
//	if err := loader.Load(path); err != nil {
//	    return errors.WrapFatal(err, "Config", "Load", "read config file")
//	}
//
// Check classification for retry logic:
//
//	if err := operation(); err != nil {
//	    if errors.IsTransient(err) {
//	        cfg := errors.DefaultRetryConfig()
//	        if cfg.ShouldRetry(err, attempt) {
//	            time.Sleep(cfg.BackoffDelay(attempt))
//	            // retry operation
//	        }
//	    }
//	}
//
// # Error Wrapping Pattern
//
// All error wrapping follows the standardized format:
//
//	"component.method: action failed: %w"
//
// Three wrapper functions provide classification-aware wrapping:
//
//	errors.WrapTransient(err, "Component", "Method", "action")
//	errors.WrapInvalid(err, "Component", "Method", "action")
//	errors.WrapFatal(err, "Component", "Method", "action")
//
// # Integration with errors.As/Is
//
// All error types support standard library error inspection. Classification
// is preserved through wrapping chains:
//
//	wrapped := errors.WrapTransient(errors.ErrFifoFull, "Demo", "Run", "put entry")
//	errors.IsFull(wrapped)      // true
//	errors.IsTransient(wrapped) // true
//
// # Retry Configuration
//
// RetryConfig provides exponential backoff parameters and converts to the
// fifokit pkg/retry framework via ToRetryConfig() for callers that want the
// full Do() loop with jitter and context cancellation.
//
// # Thread Safety
//
// All classification and wrapping operations are thread-safe. Error variables
// are immutable and safe for concurrent access.
package errors
