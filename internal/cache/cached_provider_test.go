package cache

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"weather-agent/internal/weather"
)

func newCachedProvider(src Provider, c Cache) *CachedProvider {
	return NewCachedProvider(src, c, 2*time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCachedProviderHit(t *testing.T) {
	src := new(weather.MockProvider)
	mc := new(MockCache)
	cached := &weather.Reading{Location: "London", Temperature: 15, Condition: "cloudy", Humidity: 70}
	mc.On("GetReading", mock.Anything, "london").Return(cached, nil).Once()

	reading, err := newCachedProvider(src, mc).Fetch(context.Background(), "London")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading.Location != "London" || reading.Temperature != 15 {
		t.Errorf("unexpected reading: %+v", reading)
	}
	src.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	mc.AssertExpectations(t)
}

func TestCachedProviderMissFetchesAndStores(t *testing.T) {
	src := new(weather.MockProvider)
	mc := new(MockCache)
	fresh := weather.Reading{Location: "Paris", Temperature: 21, Condition: "clear sky", Humidity: 40}
	mc.On("GetReading", mock.Anything, "paris").Return(nil, nil).Once()
	src.On("Fetch", mock.Anything, "Paris").Return(fresh, nil).Once()
	mc.On("SetReading", mock.Anything, "paris", &fresh, 2*time.Minute).Return(nil).Once()

	reading, err := newCachedProvider(src, mc).Fetch(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reading != fresh {
		t.Errorf("unexpected reading: %+v", reading)
	}
	src.AssertExpectations(t)
	mc.AssertExpectations(t)
}

func TestCachedProviderCacheFailureFallsThrough(t *testing.T) {
	src := new(weather.MockProvider)
	mc := new(MockCache)
	fresh := weather.Reading{Location: "Oslo", Temperature: -2, Condition: "snow", Humidity: 80}
	mc.On("GetReading", mock.Anything, "oslo").Return(nil, errors.New("redis down")).Once()
	src.On("Fetch", mock.Anything, "Oslo").Return(fresh, nil).Once()
	mc.On("SetReading", mock.Anything, "oslo", &fresh, mock.Anything).Return(errors.New("redis down")).Once()

	reading, err := newCachedProvider(src, mc).Fetch(context.Background(), "Oslo")
	if err != nil {
		t.Fatalf("expected cache failure to fall through, got %v", err)
	}
	if reading != fresh {
		t.Errorf("unexpected reading: %+v", reading)
	}
}

func TestCachedProviderSourceErrorPropagates(t *testing.T) {
	src := new(weather.MockProvider)
	mc := new(MockCache)
	mc.On("GetReading", mock.Anything, "nowhereville").Return(nil, nil).Once()
	src.On("Fetch", mock.Anything, "Nowhereville").Return(weather.Reading{}, weather.ErrLocationNotFound).Once()

	_, err := newCachedProvider(src, mc).Fetch(context.Background(), "Nowhereville")
	if !errors.Is(err, weather.ErrLocationNotFound) {
		t.Errorf("expected ErrLocationNotFound, got %v", err)
	}
	mc.AssertNotCalled(t, "SetReading", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
