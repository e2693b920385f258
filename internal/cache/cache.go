package cache

import (
	"context"
	"strings"
	"time"

	"weather-agent/internal/weather"
)

// Cache provides short-lived weather reading caching
type Cache interface {
	// GetReading retrieves a cached reading by location key
	// Returns nil if not found
	GetReading(ctx context.Context, key string) (*weather.Reading, error)

	// SetReading stores a reading with TTL
	SetReading(ctx context.Context, key string, reading *weather.Reading, ttl time.Duration) error

	// Close closes the cache connection
	Close() error
}

// Key normalizes a location into a cache key.
func Key(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
