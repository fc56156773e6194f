package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	Battle BattleConfig
	Log    LogConfig
	Redis  RedisConfig
}

// BattleConfig holds the battle script settings
type BattleConfig struct {
	// Seed for the dice. Zero seeds from the clock.
	Seed int64 `env:"BATTLE_SEED" envDefault:"0"`
}

// LogConfig holds logging settings. Logs go to stderr so the story on
// stdout stays clean.
type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"warn"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string `env:"REDIS_URL"` // Optional: in-memory roster when empty
}

var logLevels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// LoadDotEnv loads the given .env files, or ./.env when none are given.
// It reports whether a file was loaded; a missing file is not an error.
func LoadDotEnv(filenames ...string) (bool, error) {
	err := godotenv.Load(filenames...)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("load .env: %w", err)
}

// ParseEnv loads configuration from environment variables
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the env tags cannot express
func (c *Config) Validate() error {
	if _, ok := logLevels[c.Log.Level]; !ok {
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
	return nil
}

// ZapLevel returns the configured log level
func (c LogConfig) ZapLevel() zapcore.Level {
	if level, ok := logLevels[c.Level]; ok {
		return level
	}
	return zapcore.WarnLevel
}
