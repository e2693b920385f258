package cache

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"weather-agent/internal/weather"
)

// MockCache is a mock implementation of the Cache interface for testing
type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetReading(ctx context.Context, key string) (*weather.Reading, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*weather.Reading), args.Error(1)
}

func (m *MockCache) SetReading(ctx context.Context, key string, reading *weather.Reading, ttl time.Duration) error {
	args := m.Called(ctx, key, reading, ttl)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}
