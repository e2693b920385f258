package agent

import (
	"strings"
	"testing"
	"time"

	"weather-agent/internal/weather"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"What's the weather in London?", "London", true},
		{"what's the weather in london", "london", true},
		{"Weather forecast for Paris!", "Paris", true},
		{"How hot is it in New York City today?", "New York City", true},
		{"What's the temperature at Heathrow right now", "Heathrow", true},
		{"Is it raining in the Lake District?", "Lake District", true},
		{"weather in San Francisco, CA", "San Francisco", true},
		{"How is the weather?", "", false},
		{"weather please", "", false},
		{"Is it raining", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := ExtractLocation(tt.query)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v (loc=%q)", tt.ok, ok, got)
			}
			if got != tt.want {
				t.Errorf("expected location %q, got %q", tt.want, got)
			}
		})
	}
}

func TestHasWeatherIntent(t *testing.T) {
	positives := []string{
		"What's the weather in London?",
		"TEMPERATURE in Oslo",
		"give me the forecast for tomorrow",
		"how hot is it outside",
		"is it raining in Seattle",
		"what's the humidity in Singapore",
	}
	for _, q := range positives {
		if !hasWeatherIntent(q) {
			t.Errorf("expected weather intent for %q", q)
		}
	}

	negatives := []string{
		"Tell me a joke",
		"What's the capital of France?",
		"Write a haiku about winter",
	}
	for _, q := range negatives {
		if hasWeatherIntent(q) {
			t.Errorf("expected no weather intent for %q", q)
		}
	}
}

func TestFormatReading(t *testing.T) {
	reading := weather.Reading{
		Location:    "London",
		Country:     "GB",
		Temperature: 15.5,
		FeelsLike:   14.8,
		Condition:   "light rain",
		Humidity:    76,
		WindSpeed:   4.1,
		Units:       weather.UnitsMetric,
		AsOf:        time.Now().UTC(),
	}
	got := formatReading(reading)
	for _, want := range []string{"London, GB", "light rain", "15.5°C", "feels like 14.8°C", "76%", "4.1 m/s"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}

	// Same reading twice renders the same sentence.
	if formatReading(reading) != got {
		t.Error("expected deterministic formatting")
	}
}

func TestFormatReadingSparseFields(t *testing.T) {
	got := formatReading(weather.Reading{
		Location:    "London",
		Temperature: 15,
		Condition:   "cloudy",
		Humidity:    70,
	})
	for _, want := range []string{"London", "15.0°C", "cloudy", "70%"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "feels like") {
		t.Errorf("expected no feels-like clause, got %q", got)
	}
	if strings.Contains(got, "Wind") {
		t.Errorf("expected no wind clause, got %q", got)
	}
}
