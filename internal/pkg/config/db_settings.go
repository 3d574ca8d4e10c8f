package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings holds the signing key metadata database connection settings.
// DBName is created on first connect for postgres and ignored for sqlite.
type DatabaseSettings struct {
	Type   string `toml:"type" validate:"required,oneof=sqlite postgres"`
	DSN    string `toml:"dsn" validate:"required_if=Type postgres"`
	DBName string `toml:"db_name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
