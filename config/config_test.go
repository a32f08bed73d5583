package config

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_defaults(t *testing.T) {
	c, err := FromEnv(envFrom(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
	if c.Surface != SurfaceWeb || c.Port != 3000 || c.FPLTimeout != 30*time.Second {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestFromEnv(t *testing.T) {
	c, err := FromEnv(envFrom(map[string]string{
		"FPL_BASE_URL":    "http://localhost:8080",
		"FPL_TIMEOUT":     "5s",
		"FPL_RETRY_DELAY": "0s",
		"SURFACE":         "dir",
		"PORT":            "8000",
		"OUTPUT_DIR":      "/tmp/charts",
		"CHART_WIDTH":     "1280",
		"CHART_HEIGHT":    "720",
		"LOG_LEVEL":       "debug",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Config{
		FPLBaseURL:    "http://localhost:8080",
		FPLTimeout:    5 * time.Second,
		FPLRetryDelay: 0,
		Surface:       SurfaceDir,
		Port:          8000,
		OutputDir:     "/tmp/charts",
		ChartWidth:    1280,
		ChartHeight:   720,
		LogLevel:      log.DebugLevel,
	}
	if c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}
}

func TestFromEnv_errors(t *testing.T) {
	tests := map[string]map[string]string{
		"bad timeout":     {"FPL_TIMEOUT": "soon"},
		"zero timeout":    {"FPL_TIMEOUT": "0s"},
		"negative delay":  {"FPL_RETRY_DELAY": "-1s"},
		"bad surface":     {"SURFACE": "x11"},
		"bad port":        {"PORT": "http"},
		"bad chart width": {"CHART_WIDTH": "wide"},
		"bad log level":   {"LOG_LEVEL": "loud"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := FromEnv(envFrom(env)); err == nil {
				t.Errorf("expected an error")
			}
		})
	}
}
