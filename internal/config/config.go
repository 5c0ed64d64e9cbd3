package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mesa-judge/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the optional Redis override backend.
	Redis configs.Redis `envPrefix:"REDIS_"`

	// Judgment holds the rule thresholds.
	Judgment configs.Judgment `envPrefix:"JUDGMENT_"`

	// Anomaly holds the detector thresholds.
	Anomaly configs.Anomaly `envPrefix:"ANOMALY_"`

	// Override selects the override backend, timezone and purge schedule.
	Override configs.Override `envPrefix:"OVERRIDE_"`

	// Worker bounds batch concurrency.
	Worker configs.Worker `envPrefix:"WORKER_"`
}

// Load reads configuration from environment variables into a Config. Files
// given in files are loaded first with godotenv (".env" when none are
// passed); missing files are ignored and variables already set in the
// environment win. All fields are loaded with their specified defaults when
// no environment variable is provided.
func Load(files ...string) (Config, error) {
	var cfg Config
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
