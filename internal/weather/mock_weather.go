package weather

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider is a mock implementation of Provider using testify/mock.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Fetch(ctx context.Context, location string) (Reading, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(Reading), args.Error(1)
}
