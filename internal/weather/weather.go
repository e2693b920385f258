package weather

import (
	"context"
	"errors"
	"time"
)

// Reading is the normalized current-conditions view for one location.
type Reading struct {
	Location    string    `json:"location"`
	Country     string    `json:"country,omitempty"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Condition   string    `json:"condition"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Units       Units     `json:"units"`
	AsOf        time.Time `json:"as_of"` // always UTC
}

// Units selects the measurement system a reading was fetched in.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// TempUnit returns the display suffix for temperatures in these units.
func (u Units) TempUnit() string {
	if u == UnitsImperial {
		return "°F"
	}
	return "°C"
}

// WindUnit returns the display suffix for wind speeds in these units.
func (u Units) WindUnit() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

var (
	// ErrLocationNotFound means the upstream source has no match for the
	// requested place name. Malformed but non-empty locations resolve
	// here rather than failing the call.
	ErrLocationNotFound = errors.New("location not found")

	// ErrUnavailable covers network failures, timeouts, and any upstream
	// status that is neither success nor an unknown-location response.
	ErrUnavailable = errors.New("weather source unavailable")
)

// Provider abstracts a current-conditions data source.
type Provider interface {
	Fetch(ctx context.Context, location string) (Reading, error)
}
