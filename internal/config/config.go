// Package config loads service settings from the environment (optionally
// seeded from a .env file) and the ward YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/WailSalutem-Health-Care/ward-service/internal/photo"
	"github.com/WailSalutem-Health-Care/ward-service/internal/shift"
	"github.com/WailSalutem-Health-Care/ward-service/internal/view"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHTTPAddr       = ":8080"
	DefaultAllowedOrigins = "http://localhost:3000"
	DefaultWardFile       = "ward.yml"
)

// Config holds service configuration
type Config struct {
	HTTPAddr       string
	LogLevel       string
	LogFormat      string
	AllowedOrigins []string
	RabbitMQURL    string
	WardFile       string
	PhotoMaxBytes  int64
	Ward           Ward
}

// Ward is the content of the ward YAML file.
type Ward struct {
	AppInfo string        `yaml:"appInfo"`
	Shifts  []shift.Entry `yaml:"shifts"`
}

// Load reads .env (when present), then the environment, then the ward file.
// A missing ward file is not an error; defaults apply.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", DefaultHTTPAddr),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", DefaultAllowedOrigins)),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		WardFile:       getEnv("WARD_CONFIG", DefaultWardFile),
		PhotoMaxBytes:  photo.DefaultMaxBytes,
	}

	if raw := os.Getenv("PHOTO_MAX_BYTES"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid PHOTO_MAX_BYTES %q", raw)
		}
		cfg.PhotoMaxBytes = n
	}

	ward, err := LoadWard(cfg.WardFile)
	if err != nil {
		return nil, err
	}
	cfg.Ward = *ward

	return cfg, nil
}

// LoadWard reads the ward YAML file and fills unset values with defaults.
func LoadWard(path string) (*Ward, error) {
	ward := &Ward{}
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read ward file: %w", err)
	default:
		if err := yaml.Unmarshal(b, ward); err != nil {
			return nil, fmt.Errorf("failed to parse ward file %s: %w", path, err)
		}
	}

	if ward.AppInfo == "" {
		ward.AppInfo = view.MsgDefaultAppInfo
	}
	if len(ward.Shifts) == 0 {
		ward.Shifts = append([]shift.Entry(nil), shift.DefaultEntries...)
	}
	return ward, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
