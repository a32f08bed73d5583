package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mww/fpl_analyzer/fpl"
	log "github.com/sirupsen/logrus"
)

const (
	SurfaceWeb  = "web"
	SurfaceDir  = "dir"
	SurfaceNone = "none"
)

type Config struct {
	FPLBaseURL    string
	FPLTimeout    time.Duration
	FPLRetryDelay time.Duration

	Surface   string
	Port      int
	OutputDir string

	ChartWidth  int
	ChartHeight int

	LogLevel log.Level
}

func Default() Config {
	return Config{
		FPLBaseURL:    fpl.FPLURL,
		FPLTimeout:    30 * time.Second,
		FPLRetryDelay: 2 * time.Second,
		Surface:       SurfaceWeb,
		Port:          3000,
		OutputDir:     "charts",
		LogLevel:      log.InfoLevel,
	}
}

// Load reads a .env file if there is one and then the environment. Unset
// variables keep their default value.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

func FromEnv(getenv func(string) string) (Config, error) {
	c := Default()
	var err error

	if v := getenv("FPL_BASE_URL"); v != "" {
		c.FPLBaseURL = v
	}
	if c.FPLTimeout, err = duration(getenv, "FPL_TIMEOUT", c.FPLTimeout); err != nil {
		return Config{}, err
	}
	if c.FPLTimeout <= 0 {
		return Config{}, fmt.Errorf("FPL_TIMEOUT must be positive, got %v", c.FPLTimeout)
	}
	if c.FPLRetryDelay, err = duration(getenv, "FPL_RETRY_DELAY", c.FPLRetryDelay); err != nil {
		return Config{}, err
	}
	if c.FPLRetryDelay < 0 {
		return Config{}, fmt.Errorf("FPL_RETRY_DELAY can not be negative, got %v", c.FPLRetryDelay)
	}

	if v := getenv("SURFACE"); v != "" {
		switch v {
		case SurfaceWeb, SurfaceDir, SurfaceNone:
			c.Surface = v
		default:
			return Config{}, fmt.Errorf("invalid SURFACE '%s', expected one of web, dir, none", v)
		}
	}
	if c.Port, err = integer(getenv, "PORT", c.Port); err != nil {
		return Config{}, err
	}
	if v := getenv("OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}

	if c.ChartWidth, err = integer(getenv, "CHART_WIDTH", c.ChartWidth); err != nil {
		return Config{}, err
	}
	if c.ChartHeight, err = integer(getenv, "CHART_HEIGHT", c.ChartHeight); err != nil {
		return Config{}, err
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		if c.LogLevel, err = log.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("error parsing LOG_LEVEL: %w", err)
		}
	}

	return c, nil
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return d, nil
}

func integer(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return i, nil
}
