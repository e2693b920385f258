package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"weather-agent/internal/retry"
)

// OpenWeather implements Provider against the OpenWeatherMap current
// weather API. Each Fetch is a fresh remote request; resilience (bounded
// retry plus a circuit breaker) lives here, never in the caller.
type OpenWeather struct {
	apiKey     string
	baseURL    string
	units      Units
	client     *http.Client
	circuit    *gobreaker.CircuitBreaker
	maxRetries int
	retryBase  time.Duration
}

const (
	defaultWeatherTimeout = 10 * time.Second
	defaultMaxRetries     = 2
	defaultRetryBase      = 500 * time.Millisecond
	maxRetryDelay         = 5 * time.Second
)

// errTransient marks upstream failures worth retrying (5xx, 429, transport).
var errTransient = errors.New("transient upstream error")

// NewOpenWeather builds an OpenWeatherMap provider. A missing API key is
// a construction error, not a first-call surprise.
func NewOpenWeather(apiKey, baseURL string, units Units, timeout time.Duration) (*OpenWeather, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openweather api key required")
	}
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if units != UnitsImperial {
		units = UnitsMetric
	}
	if timeout <= 0 {
		timeout = defaultWeatherTimeout
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		// An unknown location is a normal user outcome, not an upstream
		// fault; it must never open the circuit.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrLocationNotFound)
		},
	})
	return &OpenWeather{
		apiKey:     apiKey,
		baseURL:    baseURL,
		units:      units,
		client:     &http.Client{Timeout: timeout},
		circuit:    cb,
		maxRetries: defaultMaxRetries,
		retryBase:  defaultRetryBase,
	}, nil
}

// openWeatherPayload mirrors the subset of the OpenWeatherMap response we
// normalize into a Reading.
type openWeatherPayload struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

func (p *OpenWeather) Fetch(ctx context.Context, location string) (Reading, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Reading{}, ErrLocationNotFound
	}

	var payload openWeatherPayload
	attempt := 0
	for {
		if err := ctx.Err(); err != nil {
			return Reading{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		err := p.fetchOnce(ctx, location, &payload)
		if err == nil {
			break
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return Reading{}, fmt.Errorf("%w: circuit open", ErrUnavailable)
		}
		if !errors.Is(err, errTransient) {
			return Reading{}, err
		}
		if attempt >= p.maxRetries {
			return Reading{}, fmt.Errorf("%w: retries exhausted: %v", ErrUnavailable, err)
		}

		timer := time.NewTimer(retry.ExponentialBackoffCapped(attempt, p.retryBase, maxRetryDelay))
		select {
		case <-ctx.Done():
			timer.Stop()
			return Reading{}, fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
		case <-timer.C:
		}
		attempt++
	}

	asOf := time.Unix(payload.Dt, 0).UTC()
	if payload.Dt == 0 {
		asOf = time.Now().UTC()
	}
	condition := "unknown"
	if len(payload.Weather) > 0 && payload.Weather[0].Description != "" {
		condition = payload.Weather[0].Description
	}
	name := payload.Name
	if name == "" {
		name = location
	}
	return Reading{
		Location:    name,
		Country:     payload.Sys.Country,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Condition:   condition,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Units:       p.units,
		AsOf:        asOf,
	}, nil
}

func (p *OpenWeather) fetchOnce(ctx context.Context, location string, payload *openWeatherPayload) error {
	values := url.Values{}
	values.Set("q", location)
	values.Set("appid", p.apiKey)
	values.Set("units", string(p.units))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	_, err = p.circuit.Execute(func() (interface{}, error) {
		resp, execErr := p.client.Do(req)
		if execErr != nil {
			return nil, fmt.Errorf("%w: %v", errTransient, execErr)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			if decErr := json.NewDecoder(resp.Body).Decode(payload); decErr != nil {
				return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, decErr)
			}
			return nil, nil
		case resp.StatusCode == http.StatusNotFound:
			return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, location)
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			return nil, fmt.Errorf("%w: status %d", errTransient, resp.StatusCode)
		default:
			return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
		}
	})
	return err
}
