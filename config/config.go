// Package config loads the settings of the openkit tools from the
// environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/sarchlab/openkit/logging"
)

// The sinks recorded entries can be sent to.
const (
	SinkNone   = "none"
	SinkLog    = "log"
	SinkSQLite = "sqlite"
)

// Config holds every setting.
type Config struct {
	LogLevel  string `env:"OPENKIT_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"OPENKIT_LOG_FORMAT"`

	Sink          string `env:"OPENKIT_SINK" envDefault:"log"`
	DBPath        string `env:"OPENKIT_DB_PATH"`
	SessionNumber int32  `env:"OPENKIT_SESSION_NUMBER" envDefault:"0"`
	AsyncBuffer   int    `env:"OPENKIT_ASYNC_BUFFER" envDefault:"1024"`

	MonitorPort int `env:"OPENKIT_MONITOR_PORT" envDefault:"0"`
}

// Load reads the given .env files into the process environment, without
// overriding variables that are already set, and parses the configuration.
// With no files, ".env" is tried and silently skipped when missing.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	} else if err := godotenv.Load(files...); err != nil {
		return Config{}, fmt.Errorf("load env files: %w", err)
	}

	return Parse()
}

// Parse parses the configuration from the environment only.
func Parse() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values the environment parser cannot check.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("OPENKIT_LOG_LEVEL: %w", err)
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("OPENKIT_LOG_FORMAT: unknown format %q", c.LogFormat)
	}

	switch c.Sink {
	case SinkNone, SinkLog, SinkSQLite:
	default:
		return fmt.Errorf("OPENKIT_SINK: unknown sink %q", c.Sink)
	}

	if c.AsyncBuffer <= 0 {
		return fmt.Errorf("OPENKIT_ASYNC_BUFFER: must be positive, got %d",
			c.AsyncBuffer)
	}

	return nil
}

// Level returns the parsed log level.
func (c Config) Level() logging.Level {
	l, _ := logging.ParseLevel(c.LogLevel)
	return l
}
