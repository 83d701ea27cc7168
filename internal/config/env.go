package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome      = "SLAYERDEX_HOME"
	EnvAPIURL    = "SLAYERDEX_API_URL"
	EnvListLimit = "SLAYERDEX_LIST_LIMIT"
	EnvTimeout   = "SLAYERDEX_TIMEOUT"
	EnvLogLevel  = "SLAYERDEX_LOG_LEVEL"
	EnvLogFormat = "SLAYERDEX_LOG_FORMAT"
)

// LoadDotEnv loads KEY=VALUE pairs from path (".env" when empty) into the
// process environment. Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides cfg from SLAYERDEX_* variables.
func ApplyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		cfg.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvListLimit); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvListLimit, err)
		}
		cfg.API.ListLimit = n
	}
	if v, ok := lookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.API.Timeout = d
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		cfg.Logging.Format = v
	}
	return nil
}
