package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/porquinho-server/internal/projection"
)

const (
	envPrefix     = "PORQUINHO_"
	envConfigFile = "PORQUINHO_CONFIG_FILE"
)

type Config struct {
	Port     string `koanf:"port"`
	LogLevel string `koanf:"log_level"`

	// An empty PostgresAddress disables the remote tier.
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`
	PostgresSSLMode  string `koanf:"postgres_sslmode"`

	SQLitePath string `koanf:"sqlite_path"`

	// An empty RedisAddress keeps the advice cache in memory.
	RedisAddress   string        `koanf:"redis_address"`
	AdviceCacheTTL time.Duration `koanf:"advice_cache_ttl"`

	GeminiAPIKey string `koanf:"gemini_api_key"`
	GeminiModel  string `koanf:"gemini_model"`
	OwnerName    string `koanf:"owner_name"`

	AnnualRate     float64 `koanf:"annual_rate"`
	AverageTaxRate float64 `koanf:"average_tax_rate"`

	OperatorWorkers   int `koanf:"operator_workers"`
	OperatorQueueSize int `koanf:"operator_queue_size"`
}

func defaults() map[string]interface{} {
	rates := projection.DefaultRates()
	// In all cases the default behavior should be for the docker compose setup,
	// minus the address so a bare checkout runs on the local tier alone.
	return map[string]interface{}{
		"port":                "9446",
		"log_level":           "info",
		"postgres_address":    "",
		"postgres_port":       "5433",
		"postgres_db":         "postgres",
		"postgres_username":   "postgres",
		"postgres_password":   "testpassword",
		"postgres_sslmode":    "disable",
		"sqlite_path":         "porquinho.db",
		"redis_address":       "",
		"advice_cache_ttl":    "6h",
		"gemini_api_key":      "",
		"gemini_model":        "gemini-1.5-flash",
		"owner_name":          "",
		"annual_rate":         rates.AnnualRate,
		"average_tax_rate":    rates.AverageTaxRate,
		"operator_workers":    1,
		"operator_queue_size": 100,
	}
}

// ProcessEnvironmentVariables loads defaults, then the YAML file named by
// PORQUINHO_CONFIG_FILE if any, then PORQUINHO_* variables.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load(os.Getenv(envConfigFile))
}

// Load is ProcessEnvironmentVariables with an explicit config file path.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logrus.WithError(err).Warn("Config.Load.dotenvUnreadable")
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configFile, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.SQLitePath == "" {
		problems = append(problems, "sqlite path cannot be empty")
	}

	if c.PostgresEnabled() {
		if c.PostgresDB == "" {
			problems = append(problems, "postgres database cannot be empty when postgres address is set")
		}
		if c.PostgresUsername == "" {
			problems = append(problems, "postgres username cannot be empty when postgres address is set")
		}
		if _, err := strconv.Atoi(c.PostgresPort); err != nil {
			problems = append(problems, fmt.Sprintf("invalid postgres port '%s'", c.PostgresPort))
		}
	}

	if c.AdviceCacheTTL < 0 {
		problems = append(problems, "advice cache ttl cannot be negative")
	}

	if c.AnnualRate < 0 {
		problems = append(problems, fmt.Sprintf("invalid annual rate %v: must not be negative", c.AnnualRate))
	}
	if c.AverageTaxRate < 0 || c.AverageTaxRate >= 1 {
		problems = append(problems, fmt.Sprintf("invalid average tax rate %v: must be in [0, 1)", c.AverageTaxRate))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, "operator workers must be at least 1")
	}
	if c.OperatorQueueSize < 1 {
		problems = append(problems, "operator queue size must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

func (c *Config) PostgresEnabled() bool {
	return c.PostgresAddress != ""
}

func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}

func (c *Config) RedisEnabled() bool {
	return c.RedisAddress != ""
}

func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) Rates() projection.Rates {
	return projection.Rates{
		AnnualRate:     c.AnnualRate,
		AverageTaxRate: c.AverageTaxRate,
	}
}
