// Package config loads storefront settings from an optional YAML file with
// environment variable overrides on top.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Duration lets YAML carry values like "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

type Config struct {
	APIURL         string   `yaml:"api_url"`
	RequestTimeout Duration `yaml:"request_timeout"`
	Session        Session  `yaml:"session"`
}

// Session selects where the login session is persisted.
type Session struct {
	Backend       string `yaml:"backend"` // "file" or "redis"
	Path          string `yaml:"path"`    // file backend: session file location
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	DeviceID      string `yaml:"device_id"` // redis backend: key namespace per terminal
}

func Default() Config {
	return Config{
		APIURL:         "http://localhost:3000",
		RequestTimeout: Duration(30 * time.Second),
		Session: Session{
			Backend:  BackendFile,
			DeviceID: "default",
		},
	}
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides. An empty path skips the file step.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.APIURL = getEnv("API_URL", cfg.APIURL)
	cfg.Session.Backend = getEnv("SESSION_BACKEND", cfg.Session.Backend)
	cfg.Session.Path = getEnv("SESSION_PATH", cfg.Session.Path)
	cfg.Session.RedisAddr = getEnv("REDIS_ADDR", cfg.Session.RedisAddr)
	cfg.Session.RedisPassword = getEnv("REDIS_PASSWORD", cfg.Session.RedisPassword)
	cfg.Session.DeviceID = getEnv("DEVICE_ID", cfg.Session.DeviceID)
	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("parse REQUEST_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = Duration(d)
	}

	if cfg.Session.Backend != BackendFile && cfg.Session.Backend != BackendRedis {
		return Config{}, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
