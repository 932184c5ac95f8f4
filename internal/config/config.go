// Package config manages environment variables.
//
// It reads variables from the environment (and a `.env` file if present),
// loads them into structured Go types, and validates that required values
// are present so they can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional values (limits, paths, observability).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
//
// Nesting uses "." after the prefix:
//
//	COURSEAPI_SERVER.PORT        -> server.port
//	COURSEAPI_MONGO.DEFAULT_LIMIT -> mongo.default_limit
const EnvPrefix = "COURSEAPI_"

// ServiceName tags logs and New Relic data for this binary.
const ServiceName = "course-apis"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags map keys, the `validate:"..."` tags are enforced by
// go-playground/validator after unmarshalling.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Mongo         MongoConfig          `koanf:"mongo" validate:"required"`
	Redis         RedisConfig          `koanf:"redis" validate:"required"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Files         FilesConfig          `koanf:"files" validate:"required"`
	PokeAPI       PokeAPIConfig        `koanf:"pokeapi" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// HostAPI is the public base URL used to build links to uploaded files,
	// e.g. http://localhost:8080/api.
	HostAPI string `koanf:"host_api" validate:"required,url"`

	// RateLimit and RateBurst bound requests per second per client IP on
	// the authentication routes.
	RateLimit float64 `koanf:"rate_limit" validate:"gt=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=1"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// MongoConfig holds the pokedex document store settings.
type MongoConfig struct {
	URI      string `koanf:"uri" validate:"required"`
	Database string `koanf:"database" validate:"required"`

	// DefaultLimit is the page size used when a pokemon listing omits limit.
	DefaultLimit int `koanf:"default_limit" validate:"min=1"`
}

// RedisConfig contains Redis connection details.
// Address is "host:port".
type RedisConfig struct {
	Address string `koanf:"address" validate:"required"`
}

// AuthConfig stores the signing secret and lifetime of teslo access tokens.
type AuthConfig struct {
	SecretKey string        `koanf:"secret_key" validate:"required,min=16"`
	TokenTTL  time.Duration `koanf:"token_ttl" validate:"min=1m"`
}

// IntegrationConfig holds third-party API credentials.
// An empty ResendAPIKey disables outgoing email.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// FilesConfig controls where uploaded product images live.
type FilesConfig struct {
	UploadDir      string `koanf:"upload_dir" validate:"required"`
	MaxUploadBytes int64  `koanf:"max_upload_bytes" validate:"min=1"`
}

// PokeAPIConfig points the pokedex seed importer at the public PokeAPI.
type PokeAPIConfig struct {
	BaseURL   string        `koanf:"base_url" validate:"required,url"`
	SeedLimit int           `koanf:"seed_limit" validate:"min=1"`
	Timeout   time.Duration `koanf:"timeout" validate:"min=1s"`
}

// DefaultConfig returns the values used for any key the environment omits.
// Connection credentials have no defaults and must always be provided.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			HostAPI:            "http://localhost:8080/api",
			RateLimit:          5,
			RateBurst:          10,
		},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    25,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 300,
		},
		Mongo: MongoConfig{
			Database:     "nest-pokemon",
			DefaultLimit: 7,
		},
		Auth: AuthConfig{
			TokenTTL: 2 * time.Hour,
		},
		Integration: IntegrationConfig{
			EmailFrom: "Teslo Shop <onboarding@resend.dev>",
		},
		Files: FilesConfig{
			UploadDir:      "static/products",
			MaxUploadBytes: 5 << 20,
		},
		PokeAPI: PokeAPIConfig{
			BaseURL:   "https://pokeapi.co/api/v2",
			SeedLimit: 10,
			Timeout:   10 * time.Second,
		},
	}
}

// LoadConfig reads COURSEAPI_* variables on top of DefaultConfig, validates
// the result and fills in observability defaults.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// Only prefixed variables are read. The prefix is stripped and the key
	// lower-cased; "." in the variable name becomes nesting.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal only overwrites keys present in koanf, so pre-filled
	// defaults survive for anything not set in the environment.
	mainConfig := DefaultConfig()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment are never configurable on their own.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// IsLocal reports whether the binary runs on a developer machine, where SQL
// tracing is enabled and migrations are not applied on start-up.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
