// Package timestamp provides standardized monotonic timestamp handling utilities.
//
// This package uses int64 nanosecond ticks as the canonical timestamp format.
// Ticks are measured from a Clock's start reference using Go's monotonic clock
// reading, so they are guaranteed non-decreasing and are meaningful only for
// relative duration measurement, never as wall-clock time.
//
// Zero Value Semantics:
//   - A tick value of 0 means "not set" or "captured at the reference instant"
//   - Functions handle zero values gracefully, returning appropriate defaults
//
// Usage Examples:
//
//	// Create a clock; the reference instant is set here
//	clk := timestamp.New()
//
//	// Capture ticks elapsed since the reference
//	ts := clk.Ticks()
//
//	// Duration between two captures
//	d := timestamp.Between(earlier, later)
//
//	// Format for display
//	display := timestamp.Format(ts)
package timestamp

import (
	"fmt"
	"time"
)

// Clock captures monotonic ticks relative to a start reference.
// The zero value is not usable; construct with New.
type Clock struct {
	start time.Time
}

// New returns a Clock whose reference instant is the moment of the call.
// All ticks produced by this clock measure elapsed time from here.
func New() *Clock {
	return &Clock{start: time.Now()}
}

// NewAt returns a Clock with an explicit reference instant. Useful in tests
// that need a deterministic reference.
func NewAt(start time.Time) *Clock {
	return &Clock{start: start}
}

// Ticks returns the nanoseconds elapsed since the clock's reference instant.
// time.Since uses the monotonic reading, so successive calls never decrease.
func (c *Clock) Ticks() int64 {
	return int64(time.Since(c.start))
}

// Elapsed returns the time elapsed since the reference instant as a Duration.
func (c *Clock) Elapsed() time.Duration {
	return time.Since(c.start)
}

// Between returns the duration between two tick captures from the same clock.
// Negative results are possible when the arguments are swapped; callers that
// only care about magnitude should take the absolute value.
func Between(earlier, later int64) time.Duration {
	return time.Duration(later - earlier)
}

// Format renders ticks as a human-readable duration for logs and demo output.
// Returns "0s" for the zero value.
func Format(ticks int64) string {
	return time.Duration(ticks).String()
}

// Seconds converts ticks to floating-point seconds for display.
func Seconds(ticks int64) float64 {
	return time.Duration(ticks).Seconds()
}

// IsZero checks if a tick value is unset (zero).
func IsZero(ticks int64) bool {
	return ticks == 0
}

// Validate checks that a tick value is usable as an entry timestamp.
// Ticks are elapsed time, so negative values indicate caller error.
func Validate(ticks int64) error {
	if ticks < 0 {
		return fmt.Errorf("timestamp ticks cannot be negative: %d", ticks)
	}
	return nil
}
