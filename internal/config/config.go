package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

const (
	defaultPostgresHost     = "localhost"
	defaultPostgresPort     = 5432
	defaultPostgresUser     = "postgres"
	defaultPostgresPassword = "password"
	defaultPostgresDatabase = "nestjs_template"
)

// Config holds the environment driven configuration for the application settings service.
type Config struct {
	ServiceName     string        `env:"SERVICE_NAME" envDefault:"application-settings-api"`
	Environment     string        `env:"ENVIRONMENT" envDefault:"development"`
	HTTPPort        int           `env:"PORT" envDefault:"3000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	EnableTracing   bool          `env:"ENABLE_TRACING" envDefault:"false"`
	OTLPEndpoint    string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	TraceSampleRate float64       `env:"TRACING_SAMPLE_RATIO" envDefault:"1"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Database Database

	DBMaxIdleConns int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBMaxOpenConns int           `env:"DB_MAX_OPEN_CONNS" envDefault:"15"`
	DBConnLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	AuthEnabled bool   `env:"AUTH_ENABLED" envDefault:"false"`
	AuthIssuer  string `env:"AUTH_ISSUER"`
	Account     string `env:"ACCOUNT"`
	AuthJWKSURL string `env:"AUTH_JWKS_URL"`
}

// Database is the relational backend record. Fields are normalised by Load
// and never fail to parse: unusable values fall back to the literal defaults.
type Database struct {
	Type          string
	Host          string
	Port          int
	Username      string
	Password      string
	Name          string
	Synchronize   bool
	Logging       bool
	MigrationsRun bool
}

// rawDatabase mirrors the database environment as plain strings.
type rawDatabase struct {
	Host          string `env:"POSTGRES_HOST"`
	Port          string `env:"POSTGRES_PORT"`
	User          string `env:"POSTGRES_USER"`
	Password      string `env:"POSTGRES_PASSWORD"`
	Name          string `env:"POSTGRES_DATABASE"`
	Synchronize   string `env:"TYPEORM_SYNCHRONIZE"`
	Logging       string `env:"TYPEORM_LOGGING"`
	MigrationsRun string `env:"TYPEORM_MIGRATIONS_RUN"`
}

// Load parses environment variables into Config.
//
// Configuration Loading Order (highest to lowest priority):
// 1. Environment variables
// 2. .env file (if present)
// 3. Default values from struct tags and the database fallbacks
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env config: %w", err)
	}

	raw := rawDatabase{}
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse database env: %w", err)
	}
	cfg.Database = raw.normalize()

	// Validate auth configuration
	if cfg.AuthEnabled {
		if strings.TrimSpace(cfg.AuthIssuer) == "" {
			return nil, fmt.Errorf("AUTH_ISSUER is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.Account) == "" {
			return nil, fmt.Errorf("ACCOUNT is required when AUTH_ENABLED is true")
		}
		if strings.TrimSpace(cfg.AuthJWKSURL) == "" {
			return nil, fmt.Errorf("AUTH_JWKS_URL is required when AUTH_ENABLED is true")
		}
	}

	return cfg, nil
}

func (r rawDatabase) normalize() Database {
	return Database{
		Type:          "postgres",
		Host:          orDefault(r.Host, defaultPostgresHost),
		Port:          parsePort(r.Port),
		Username:      orDefault(r.User, defaultPostgresUser),
		Password:      orDefault(r.Password, defaultPostgresPassword),
		Name:          orDefault(r.Name, defaultPostgresDatabase),
		Synchronize:   r.Synchronize == "true",
		Logging:       r.Logging == "true",
		MigrationsRun: r.MigrationsRun == "true",
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// parsePort accepts an optional "+" followed by a leading run of digits
// ("5433", "+5433", "5433abc") and falls back to the default for anything
// that does not yield a usable port.
func parsePort(raw string) int {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	port, err := strconv.Atoi(s[:end])
	if err != nil || port <= 0 || port > 65535 {
		return defaultPostgresPort
	}
	return port
}

// DSN renders the postgres connection URL for the database record.
func (d Database) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
