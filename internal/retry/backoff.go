package retry

import "time"

// ExponentialBackoff returns delay based on attempt number.
// The delay doubles with each attempt: base * 2^attempt
func ExponentialBackoff(attempt int, base time.Duration) time.Duration {
	return base * (1 << attempt)
}

// ExponentialBackoffCapped behaves like ExponentialBackoff but never
// returns more than max (when max > 0).
func ExponentialBackoffCapped(attempt int, base, max time.Duration) time.Duration {
	delay := ExponentialBackoff(attempt, base)
	if max > 0 && delay > max {
		return max
	}
	return delay
}
