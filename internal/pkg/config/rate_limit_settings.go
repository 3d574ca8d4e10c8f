package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RateLimitSettings bounds the request rate of each REST client
type RateLimitSettings struct {
	RequestsPerSecond float64 `toml:"requests_per_second" validate:"gte=0"`
	Burst             int     `toml:"burst" validate:"gte=0"`
}

// Enabled reports whether requests are limited at all
func (s *RateLimitSettings) Enabled() bool {
	return s.RequestsPerSecond > 0
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	if s.Enabled() && s.Burst == 0 {
		return fmt.Errorf("burst must be positive when requests_per_second is set")
	}
	return nil
}
