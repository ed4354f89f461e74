package config

import (
	"emrappt/cmd/internal/domain/sqlite"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
	"strings"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

type Config struct {
	Port         string   `mapstructure:"PORT"`
	StoreDriver  string   `mapstructure:"STORE_DRIVER"`
	SQLiteDSN    string   `mapstructure:"SQLITE_DSN"`
	SeedFixtures bool     `mapstructure:"SEED_FIXTURES"`
	CORSOrigins  []string `mapstructure:"CORS_ORIGINS"`
	LogLevel     string   `mapstructure:"LOG_LEVEL"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "5000")
	v.SetDefault("STORE_DRIVER", StoreMemory)
	v.SetDefault("SQLITE_DSN", sqlite.MemoryDSN)
	v.SetDefault("SEED_FIXTURES", true)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")

	for _, key := range []string{"PORT", "STORE_DRIVER", "SQLITE_DSN", "SEED_FIXTURES", "CORS_ORIGINS", "LOG_LEVEL"} {
		_ = v.BindEnv(key)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.StoreDriver != StoreMemory && c.StoreDriver != StoreSQLite {
		return fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", StoreMemory, StoreSQLite, c.StoreDriver)
	}
	if c.StoreDriver == StoreSQLite && c.SQLiteDSN == "" {
		return fmt.Errorf("SQLITE_DSN is required when STORE_DRIVER is %q", StoreSQLite)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

// Level maps LOG_LEVEL onto gommon's levels; unknown values fall back to INFO.
func (c *Config) Level() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
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
