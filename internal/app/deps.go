package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"weather-agent/internal/agent"
	"weather-agent/internal/cache"
	"weather-agent/internal/config"
	"weather-agent/internal/llm"
	"weather-agent/internal/logger"
	"weather-agent/internal/weather"
)

// Deps bundles common runtime dependencies for the agent.
type Deps struct {
	Config  config.Config
	Log     *slog.Logger
	Cache   cache.Cache
	Weather weather.Provider
	LLM     llm.Client
	Agent   *agent.Agent
}

// Build loads env, config, and shared components.
func Build() (Deps, error) {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	c, err := buildCache(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize cache: %w", err)
	}
	wp, err := buildWeather(cfg, log, c)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize weather provider: %w", err)
	}
	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize completion client: %w", err)
	}
	return Deps{
		Config:  cfg,
		Log:     log,
		Cache:   c,
		Weather: wp,
		LLM:     llmClient,
		Agent:   agent.New(wp, llmClient, log),
	}, nil
}

func buildCache(cfg config.Config, log *slog.Logger) (cache.Cache, error) {
	switch cfg.CacheProvider {
	case "redis":
		c, err := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}
		log.Info("using Redis reading cache", "addr", cfg.RedisAddr)
		return c, nil
	case "noop":
		return cache.NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("invalid CACHE_PROVIDER: %s (valid options: noop, redis)", cfg.CacheProvider)
	}
}

func buildWeather(cfg config.Config, log *slog.Logger, c cache.Cache) (weather.Provider, error) {
	if cfg.WeatherAPIKey == "" {
		return nil, fmt.Errorf("WEATHER_API_KEY is required")
	}
	source, err := weather.NewOpenWeather(
		cfg.WeatherAPIKey,
		cfg.WeatherAPIURL,
		weather.Units(cfg.WeatherUnits),
		time.Duration(cfg.WeatherTimeout)*time.Second,
	)
	if err != nil {
		return nil, err
	}
	log.Info("using OpenWeatherMap provider", "units", cfg.WeatherUnits)
	if cfg.CacheProvider == "noop" {
		return source, nil
	}
	ttl := time.Duration(cfg.CacheTTL) * time.Second
	return cache.NewCachedProvider(source, c, ttl, log), nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	timeout := time.Duration(cfg.LLMTimeout) * time.Second
	switch cfg.LLMProvider {
	case "ollama":
		client, err := llm.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, timeout)
		if err != nil {
			return nil, err
		}
		log.Info("using Ollama completion client", "url", cfg.OllamaURL, "model", cfg.OllamaModel)
		return client, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIBase, openai.ChatModel(cfg.LLMModel), timeout)
		if err != nil {
			return nil, err
		}
		log.Info("using OpenAI-compatible completion client", "model", cfg.LLMModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: ollama, openai)", cfg.LLMProvider)
	}
}
