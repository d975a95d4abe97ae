package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"creative-hub/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library.
// Nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is attached
	// to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_*).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_*).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the optional PostgreSQL backing (PSQL_*).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// S3 configures creative file uploads (S3_*).
	S3 configs.S3 `envPrefix:"S3_"`

	// NATS configures lifecycle event publishing (NATS_*).
	NATS configs.NATS `envPrefix:"NATS_"`

	// Catalog configures the brief/pattern catalog source (CATALOG_*).
	Catalog configs.Catalog `envPrefix:"CATALOG_"`
}

// Load reads an optional .env file from the working directory and then
// parses environment variables into a Config. Variables already present in
// the environment take precedence over .env entries.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
