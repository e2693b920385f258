// Package agent holds the query-routing core: it classifies free-text
// queries, dispatches to at most one capability provider, and always
// comes back with an answerable chat message.
package agent

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"weather-agent/internal/llm"
	"weather-agent/internal/weather"
)

// Intent is the classification of a query.
type Intent string

const (
	IntentWeather Intent = "weather"
	IntentGeneral Intent = "general"
)

// Classification is the outcome of matching a query against a rule.
type Classification struct {
	Intent   Intent
	Location string
}

// Rule pairs a classification predicate with its handler. Rules are
// evaluated in order, first match wins; adding a tool means appending a
// rule, never editing an existing one.
type Rule struct {
	Name   string
	Match  func(query string) (Classification, bool)
	Handle func(ctx context.Context, query string, c Classification) string
}

// Answer is the single response produced for a query.
type Answer struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Intent  Intent    `json:"intent"`
	AskedAt time.Time `json:"asked_at"`
}

// ErrEmptyQuery is the only error Handle returns; everything else is
// converted into answer text. A blank query is a caller contract
// violation and belongs to the boundary layer.
var ErrEmptyQuery = errors.New("query must not be empty")

// Agent routes queries to providers. Once the rule list is set up it
// holds no mutable state, so concurrent Handle calls are safe.
type Agent struct {
	weather weather.Provider
	llm     llm.Client
	rules   []Rule
	log     *slog.Logger
}

// New builds an agent with the default rule set: the weather rule
// followed by the general catch-all.
func New(wp weather.Provider, lc llm.Client, log *slog.Logger) *Agent {
	a := &Agent{
		weather: wp,
		llm:     lc,
		log:     log,
	}
	a.rules = []Rule{
		a.weatherRule(),
		a.generalRule(),
	}
	return a
}

// RegisterRule inserts a rule ahead of the final catch-all. Existing
// rules keep their relative priority. It mutates the rule list without
// synchronization: call it during setup, before Handle is in use.
func (a *Agent) RegisterRule(r Rule) {
	last := len(a.rules) - 1
	a.rules = append(a.rules[:last], r, a.rules[last])
}

// Handle routes a query and returns exactly one answer. Provider
// failures never escape: they become polite answer text.
func (a *Agent) Handle(ctx context.Context, query string) (Answer, error) {
	askedAt := time.Now().UTC()
	if strings.TrimSpace(query) == "" {
		return Answer{}, ErrEmptyQuery
	}

	for _, rule := range a.rules {
		c, ok := rule.Match(query)
		if !ok {
			continue
		}
		a.log.Debug("query routed", "rule", rule.Name, "intent", c.Intent, "location", c.Location)
		return Answer{
			ID:      uuid.NewString(),
			Text:    rule.Handle(ctx, query, c),
			Intent:  c.Intent,
			AskedAt: askedAt,
		}, nil
	}

	// Unreachable while the catch-all is in place.
	return Answer{}, errors.New("no rule matched")
}
