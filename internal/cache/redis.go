package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"weather-agent/internal/weather"
)

// Key prefix for cached readings
const readingKeyPrefix = "weather:"

type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis cache client
func NewRedisCache(addr, password string) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisCache{
		client: client,
	}, nil
}

// GetReading retrieves a cached reading by location key
func (c *RedisCache) GetReading(ctx context.Context, key string) (*weather.Reading, error) {
	data, err := c.client.Get(ctx, readingKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		return nil, err
	}

	var reading weather.Reading
	if err := json.Unmarshal(data, &reading); err != nil {
		return nil, err
	}
	return &reading, nil
}

// SetReading stores a reading with TTL
func (c *RedisCache) SetReading(ctx context.Context, key string, reading *weather.Reading, ttl time.Duration) error {
	data, err := json.Marshal(reading)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, readingKeyPrefix+key, data, ttl).Err()
}

// Close closes the cache connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
