package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" env-default:":8080"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	JournalDBPath  string        `env:"JOURNAL_DB_PATH" env-default:"tarot-journal.db"`
	ReversalChance float64       `env:"REVERSAL_CHANCE" env-default:"0.30"`
	LLM            LLMConfig
}

type LLMConfig struct {
	APIKey         string        `env:"OPENAI_API_KEY"`
	BaseURL        string        `env:"OPENAI_BASE_URL"`
	Model          string        `env:"LLM_MODEL" env-default:"gpt-4o"`
	FallbackModels []string      `env:"LLM_FALLBACK_MODELS"`
	Timeout        time.Duration `env:"LLM_TIMEOUT" env-default:"30s"`
}

// Load reads configuration from the environment, with a local .env file
// applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if cfg.ReversalChance < 0 || cfg.ReversalChance > 1 {
		return Config{}, fmt.Errorf("REVERSAL_CHANCE %v must be in [0, 1]", cfg.ReversalChance)
	}
	if cfg.LLM.APIKey == "" {
		return Config{}, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseLogLevel maps a config string to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid LOG_LEVEL %q", s)
	}
}
