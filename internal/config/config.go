package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port      int    `env:"PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"` // "json" or "text"

	// Completion runtime
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"ollama"` // "ollama" (local /api/generate) or "openai" (any OpenAI-compatible /v1)
	OllamaURL   string `env:"OLLAMA_URL" envDefault:"http://localhost:11434"`
	OllamaModel string `env:"OLLAMA_MODEL" envDefault:"llama3"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	OpenAIBase  string `env:"OPENAI_BASE_URL"` // empty means api.openai.com
	LLMModel    string `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	LLMTimeout  int    `env:"LLM_TIMEOUT_S" envDefault:"120"` // local models can be slow

	// Weather source
	WeatherAPIKey  string `env:"WEATHER_API_KEY"`
	WeatherAPIURL  string `env:"WEATHER_API_URL" envDefault:"https://api.openweathermap.org/data/2.5/weather"`
	WeatherUnits   string `env:"WEATHER_UNITS" envDefault:"metric"` // "metric" or "imperial"
	WeatherTimeout int    `env:"WEATHER_TIMEOUT_S" envDefault:"10"`

	// Cache
	CacheProvider string `env:"CACHE_PROVIDER" envDefault:"noop"` // "noop" (every lookup hits the source) or "redis"
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	CacheTTL      int    `env:"CACHE_TTL_S" envDefault:"120"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
