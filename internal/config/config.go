package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host" env:"FITRACK_HOST"`
	Port        int    `toml:"port" env:"FITRACK_PORT"`

	// logging
	LogLevel      string `toml:"log_level" env:"FITRACK_LOG_LEVEL"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis - completions ledger storage
	RedisHost string `toml:"redis_host" env:"FITRACK_REDIS_HOST"`
	RedisPort string `toml:"redis_port" env:"FITRACK_REDIS_PORT"`

	// postgres - training events archive
	PostgresHost   string `toml:"postgres_host" env:"FITRACK_POSTGRES_HOST"`
	PostgresPort   string `toml:"postgres_port" env:"FITRACK_POSTGRES_PORT"`
	PostgresDBName string `toml:"postgres_db_name" env:"FITRACK_POSTGRES_DB_NAME"`

	// remote exercise catalog
	ExercisesApiUrl      string `toml:"exercises_api_url" env:"FITRACK_EXERCISES_API_URL"`
	CatalogCacheExpireIn int    `toml:"catalog_cache_expire_in_seconds"`

	CompletionsRateLimitAllowedPerMin int `toml:"completions_rate_limit_allowed_per_min"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	switch strings.ToLower(env) {
	case "dev", "development":
		return t.Development, nil
	case "prod", "production":
		return t.Production, nil
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
}

// Load reads the TOML config file, picks the section for the given
// environment, and applies env var overrides on top of it.
func Load(env, path string) (*Config, error) {
	var tomlCfg Toml
	if _, err := toml.DecodeFile(path, &tomlCfg); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := tomlCfg.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("config section for env %s is empty", env)
	}

	if err := envconfig.Process(context.Background(), cfg); err != nil {
		return nil, fmt.Errorf("process env overrides: %w", err)
	}

	cfg.Environment = env
	return cfg, nil
}
