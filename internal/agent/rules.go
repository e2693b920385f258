package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"weather-agent/internal/weather"
)

// weatherKeywords trigger the weather rule on a case-insensitive
// substring match.
var weatherKeywords = []string{
	"weather",
	"temperature",
	"forecast",
	"humidity",
	"how hot",
	"how cold",
	"is it raining",
	"is it snowing",
}

const (
	clarificationMessage = "I need a location to check the weather. Please specify a city or place."

	weatherApologyFormat = "Sorry, I couldn't get the weather for %s right now. Please check the location name and try again."

	completionFallback = "Sorry, I'm having trouble generating a response right now. Please try again in a moment."

	// personaPrompt frames every general query. The raw user text is
	// embedded verbatim; the model's output is returned untouched.
	personaPrompt = `You are a helpful AI assistant with access to weather information.
If the user asks about the weather, they will be served by a dedicated weather tool.
Otherwise, respond helpfully to their query based on your knowledge.

User query: %s

Your response:`
)

// LocationExtractor pulls a place name out of a weather query. It is a
// replaceable strategy: the default is a preposition-clause regex, but a
// smarter extractor can be swapped in without touching the rule.
type LocationExtractor func(query string) (string, bool)

// locationRe captures the clause after the last "in"/"for"/"at",
// stopping at sentence punctuation.
var locationRe = regexp.MustCompile(`(?i)\b(?:in|for|at)\s+([^?.!,;]+)`)

// fillerSuffixes are trailing words that commonly ride along with the
// place name and are not part of it.
var fillerSuffixes = []string{"today", "tomorrow", "tonight", "right now", "now", "please"}

// ExtractLocation is the default LocationExtractor.
func ExtractLocation(query string) (string, bool) {
	matches := locationRe.FindAllStringSubmatch(query, -1)
	if len(matches) == 0 {
		return "", false
	}
	loc := strings.TrimSpace(matches[len(matches)-1][1])
	for changed := true; changed; {
		changed = false
		for _, suffix := range fillerSuffixes {
			trimmed := strings.TrimSuffix(loc, suffix)
			if trimmed != loc {
				loc = strings.TrimSpace(trimmed)
				changed = true
			}
		}
	}
	loc = strings.TrimPrefix(loc, "the ")
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return "", false
	}
	return loc, true
}

func hasWeatherIntent(query string) bool {
	lower := strings.ToLower(query)
	for _, keyword := range weatherKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func (a *Agent) weatherRule() Rule {
	extract := LocationExtractor(ExtractLocation)
	return Rule{
		Name: "weather",
		Match: func(query string) (Classification, bool) {
			if !hasWeatherIntent(query) {
				return Classification{}, false
			}
			loc, _ := extract(query)
			return Classification{Intent: IntentWeather, Location: loc}, true
		},
		Handle: a.handleWeather,
	}
}

func (a *Agent) generalRule() Rule {
	return Rule{
		Name: "general",
		Match: func(query string) (Classification, bool) {
			return Classification{Intent: IntentGeneral}, true
		},
		Handle: a.handleGeneral,
	}
}

func (a *Agent) handleWeather(ctx context.Context, query string, c Classification) string {
	if c.Location == "" {
		return clarificationMessage
	}
	reading, err := a.weather.Fetch(ctx, c.Location)
	if err != nil {
		// Unknown location and upstream failure read the same to the
		// user: a terminal apology, never a fallthrough to completion.
		a.log.Warn("weather lookup failed", "location", c.Location, "err", err)
		return fmt.Sprintf(weatherApologyFormat, c.Location)
	}
	return formatReading(reading)
}

// formatReading renders a deterministic sentence from a reading. No
// model pass happens on weather answers.
func formatReading(r weather.Reading) string {
	place := r.Location
	if r.Country != "" {
		place += ", " + r.Country
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Weather in %s: %s. Temperature: %.1f%s", place, r.Condition, r.Temperature, r.Units.TempUnit())
	if r.FeelsLike != 0 {
		fmt.Fprintf(&b, " (feels like %.1f%s)", r.FeelsLike, r.Units.TempUnit())
	}
	fmt.Fprintf(&b, ". Humidity: %d%%.", r.Humidity)
	if r.WindSpeed != 0 {
		fmt.Fprintf(&b, " Wind speed: %.1f %s.", r.WindSpeed, r.Units.WindUnit())
	}
	return b.String()
}

func (a *Agent) handleGeneral(ctx context.Context, query string, _ Classification) string {
	text, err := a.llm.Complete(ctx, fmt.Sprintf(personaPrompt, query))
	if err != nil {
		a.log.Warn("completion failed", "err", err)
		return completionFallback
	}
	return text
}
