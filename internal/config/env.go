package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/ytget/image-scaler/internal/downscale"
	"github.com/ytget/image-scaler/internal/platform"
	"github.com/ytget/image-scaler/internal/upscale"
)

// Environment variables read by the command-line tool
const (
	EnvAppDir      = "SCALER_APP_DIR"
	EnvPython      = "SCALER_PYTHON"
	EnvScript      = "SCALER_SCRIPT"
	EnvModelFamily = "SCALER_MODEL_FAMILY"
	EnvTimeout     = "SCALER_TIMEOUT"
	EnvFilter      = "SCALER_FILTER"
	EnvInputDir    = "SCALER_INPUT"
	EnvOutputDir   = "SCALER_OUTPUT"

	// How many parent directories are searched for a .env file
	dotEnvSearchDepth = 5
)

// EnvConfig is the headless configuration
type EnvConfig struct {
	AppDir      string
	Python      string
	Script      string
	ModelFamily string
	Timeout     time.Duration
	Filter      string
	Input       string
	Output      string
}

// LoadEnv reads SCALER_* variables, falling back to defaults
func LoadEnv() EnvConfig {
	appDir := getenv(EnvAppDir, "")
	if appDir == "" {
		if dir, err := platform.AppDir(); err == nil {
			appDir = dir
		} else {
			appDir = "."
		}
	}

	return EnvConfig{
		AppDir:      appDir,
		Python:      getenv(EnvPython, upscale.DefaultPython()),
		Script:      getenv(EnvScript, upscale.DefaultScript),
		ModelFamily: getenv(EnvModelFamily, upscale.DefaultModelFamily),
		Timeout:     getenvDuration(EnvTimeout, upscale.DefaultTimeout),
		Filter:      strings.ToLower(getenv(EnvFilter, downscale.DefaultFilter)),
		Input:       getenv(EnvInputDir, ""),
		Output:      getenv(EnvOutputDir, ""),
	}
}

// UpscaleConfig converts the environment configuration for the upscale service
func (c EnvConfig) UpscaleConfig() upscale.Config {
	return upscale.Config{
		AppDir:      c.AppDir,
		Python:      c.Python,
		Script:      c.Script,
		ModelFamily: c.ModelFamily,
		Timeout:     c.Timeout,
	}
}

// LoadDotEnv loads the first .env found in dir or up to five of its parents.
// It returns the loaded path, or "" when none was found.
func LoadDotEnv(dir string) string {
	for i := 0; i < dotEnvSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return ""
			}
			return envPath
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
	return ""
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// getenvDuration accepts Go durations ("45m") or a bare number of minutes
func getenvDuration(key string, fallback time.Duration) time.Duration {
	raw := getenv(key, "")
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil && d >= 0 {
		return d
	}
	if minutes, err := strconv.Atoi(raw); err == nil && minutes >= 0 {
		return time.Duration(minutes) * time.Minute
	}
	return fallback
}
