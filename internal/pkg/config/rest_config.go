package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// EnvConfigPath selects the REST API configuration file
const EnvConfigPath = "CONFIG_PATH"

// DefaultRestConfigPath is used when CONFIG_PATH is unset
const DefaultRestConfigPath = "configs/rest-app.toml"

// RestConfig is the configuration of the REST API server
type RestConfig struct {
	Port      string            `toml:"port" validate:"required,numeric"`
	Logger    LoggerSettings    `toml:"logger"`
	Database  DatabaseSettings  `toml:"database"`
	KeyStore  KeyStoreSettings  `toml:"key_store"`
	RateLimit RateLimitSettings `toml:"rate_limit"`
}

// setDefaults fills fields a minimal config file may omit
func (c *RestConfig) setDefaults() {
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = LogLevelInfo
	}
	if c.Logger.LogType == "" {
		c.Logger.LogType = LogTypeConsole
	}
	if c.Database.Type == "" {
		c.Database.Type = SqliteDbType
	}
	if c.Database.Type == SqliteDbType && c.Database.DSN == "" {
		c.Database.DSN = "rcli.db"
	}
	if c.KeyStore.Directory == "" {
		c.KeyStore.Directory = "keys"
	}
}

// Validate checks the REST config and all nested settings
func (c *RestConfig) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.KeyStore.Validate(); err != nil {
		return err
	}
	return c.RateLimit.Validate()
}

// InitializeRestConfig decodes the TOML file at path, applies defaults and validates the result
func InitializeRestConfig(path string) (*RestConfig, error) {
	cfg := &RestConfig{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode TOML file %s: %w", path, err)
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// RestConfigPath returns CONFIG_PATH or the default path
func RestConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultRestConfigPath
}
