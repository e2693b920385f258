package cache

import (
	"context"
	"log/slog"
	"time"

	"weather-agent/internal/weather"
)

// CachedProvider wraps a weather.Provider with a short-TTL reading
// cache. Cache failures are logged and fall through to the source; only
// lookup failures from the source itself surface to the caller.
type CachedProvider struct {
	source Provider
	cache  Cache
	ttl    time.Duration
	log    *slog.Logger
}

// Provider mirrors weather.Provider so this package stays on the
// consumer side of the dependency.
type Provider interface {
	Fetch(ctx context.Context, location string) (weather.Reading, error)
}

func NewCachedProvider(source Provider, c Cache, ttl time.Duration, log *slog.Logger) *CachedProvider {
	return &CachedProvider{source: source, cache: c, ttl: ttl, log: log}
}

func (p *CachedProvider) Fetch(ctx context.Context, location string) (weather.Reading, error) {
	key := Key(location)
	if cached, err := p.cache.GetReading(ctx, key); err == nil && cached != nil {
		p.log.Debug("weather cache hit", "location", location)
		return *cached, nil
	} else if err != nil {
		p.log.Warn("weather cache get failed", "location", location, "err", err)
	}

	reading, err := p.source.Fetch(ctx, location)
	if err != nil {
		return weather.Reading{}, err
	}
	if err := p.cache.SetReading(ctx, key, &reading, p.ttl); err != nil {
		p.log.Warn("weather cache set failed", "location", location, "err", err)
	}
	return reading, nil
}
