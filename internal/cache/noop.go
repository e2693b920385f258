package cache

import (
	"context"
	"time"

	"weather-agent/internal/weather"
)

// NoOpCache is a cache implementation that does nothing. It is the
// default: every weather lookup stays a fresh remote request. All
// operations succeed but no actual caching occurs (always cache miss).
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// GetReading always returns nil (cache miss)
func (c *NoOpCache) GetReading(ctx context.Context, key string) (*weather.Reading, error) {
	return nil, nil
}

// SetReading does nothing and always succeeds
func (c *NoOpCache) SetReading(ctx context.Context, key string, reading *weather.Reading, ttl time.Duration) error {
	return nil
}

// Close does nothing and always succeeds
func (c *NoOpCache) Close() error {
	return nil
}
