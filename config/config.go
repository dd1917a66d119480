package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/storebill/billing-engine/constants"
)

// Config carries the explicit configuration the engine needs from its host.
// Nothing here is a singleton; callers load it once and pass it down.
type Config struct {
	Stage          string
	LogLevel       string
	DefaultGSTRate float64
	CompanyState   string
}

// Load reads configuration from the environment. Outside prod a local .env
// file is honored when present; a missing .env is not an error.
func Load(stage string) (*Config, error) {
	if stage != constants.ProdEnvironment {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrap(err, "loading .env file")
		}
	}

	cfg := &Config{
		Stage:          stage,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DefaultGSTRate: 18,
		CompanyState:   getEnv("COMPANY_STATE", ""),
	}

	if raw := os.Getenv("DEFAULT_GST_RATE"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing DEFAULT_GST_RATE %q", raw)
		}
		if rate < 0 {
			return nil, errors.Errorf("DEFAULT_GST_RATE must be non-negative, got %v", rate)
		}
		cfg.DefaultGSTRate = rate
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
