package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
)

const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	HTTPPort    int    `envconfig:"HTTP_PORT" default:"8080"`

	// Timezone decides which calendar day "today" is when assigning confidence.
	Timezone string `envconfig:"TIMEZONE" default:"Asia/Tokyo"`

	// Roster
	RosterSource      string        `envconfig:"ROSTER_SOURCE" default:"file"` // file, http or postgres
	RosterFile        string        `envconfig:"ROSTER_FILE" default:"roster.yaml"`
	RosterURL         string        `envconfig:"ROSTER_URL"`
	RosterHTTPTimeout time.Duration `envconfig:"ROSTER_HTTP_TIMEOUT" default:"2s"`
	DatabaseURL       string        `envconfig:"DATABASE_URL"`
	RosterTable       string        `envconfig:"ROSTER_TABLE" default:"members"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s"`
}

// Location resolves Timezone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

// Validate checks the selected roster source has what it needs.
func (c *Config) Validate() error {
	switch strings.ToLower(c.RosterSource) {
	case SourceFile:
		if c.RosterFile == "" {
			return fmt.Errorf("ROSTER_FILE is required for the file roster source")
		}
	case SourceHTTP:
		if c.RosterURL == "" {
			return fmt.Errorf("ROSTER_URL is required for the http roster source")
		}
	case SourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres roster source")
		}
	default:
		return fmt.Errorf("unknown ROSTER_SOURCE %q", c.RosterSource)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}
