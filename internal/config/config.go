package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Decay shape names accepted in DECAY_SHAPE.
const (
	DecayLinear      = "linear"
	DecayExponential = "exponential"
)

type Config struct {
	LogLevel  string
	LogFormat string

	PositiveThreshold float64
	NegativeThreshold float64

	TrendWindow    time.Duration
	DecayShape     string
	DecayRate      float64
	PositiveWeight float64
	NeutralWeight  float64
	NegativeWeight float64

	TrendingLimit int
}

func Load() (*Config, error) {
	var errs []error

	cfg := &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		PositiveThreshold: getEnvFloat("POSITIVE_THRESHOLD", 0.25, &errs),
		NegativeThreshold: getEnvFloat("NEGATIVE_THRESHOLD", -0.25, &errs),
		DecayShape:        getEnv("DECAY_SHAPE", DecayLinear),
		DecayRate:         getEnvFloat("DECAY_RATE", 1.0, &errs),
		PositiveWeight:    getEnvFloat("POSITIVE_WEIGHT", 1.0, &errs),
		NeutralWeight:     getEnvFloat("NEUTRAL_WEIGHT", 0.0, &errs),
		NegativeWeight:    getEnvFloat("NEGATIVE_WEIGHT", -1.0, &errs),
		TrendingLimit:     getEnvInt("TRENDING_LIMIT", 10, &errs),
	}
	cfg.TrendWindow = time.Duration(getEnvInt("TREND_WINDOW_DAYS", 7, &errs)) * 24 * time.Hour

	if len(errs) > 0 {
		return nil, errs[0]
	}

	if cfg.NegativeThreshold >= cfg.PositiveThreshold {
		return nil, fmt.Errorf("NEGATIVE_THRESHOLD (%v) must be below POSITIVE_THRESHOLD (%v)",
			cfg.NegativeThreshold, cfg.PositiveThreshold)
	}
	if cfg.TrendWindow <= 0 {
		return nil, fmt.Errorf("TREND_WINDOW_DAYS must be positive")
	}
	if cfg.DecayShape != DecayLinear && cfg.DecayShape != DecayExponential {
		return nil, fmt.Errorf("DECAY_SHAPE must be %q or %q, got %q", DecayLinear, DecayExponential, cfg.DecayShape)
	}
	if cfg.DecayShape == DecayExponential && cfg.DecayRate <= 0 {
		return nil, fmt.Errorf("DECAY_RATE must be positive for exponential decay")
	}
	if cfg.TrendingLimit <= 0 {
		return nil, fmt.Errorf("TRENDING_LIMIT must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64, errs *[]error) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a number: %w", key, err))
		return defaultValue
	}
	return parsed
}

func getEnvInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer: %w", key, err))
		return defaultValue
	}
	return parsed
}
