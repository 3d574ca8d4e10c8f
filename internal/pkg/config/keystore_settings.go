package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyStoreSettings locates the directory generated signing keys are written to
type KeyStoreSettings struct {
	Directory string `toml:"directory" validate:"required"`
}

// Validate checks that all fields in KeyStoreSettings are valid
func (s *KeyStoreSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyStoreSettings: %w", err)
	}
	return nil
}
