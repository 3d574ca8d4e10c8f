package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/luffy2025/rcli/internal/pkg/validators"
)

// ErrKeyNotFound is returned when no signing key matches an ID.
var ErrKeyNotFound = errors.New("signing key not found")

// SigningKeyMeta entity
type SigningKeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Format          string    `validate:"required,signFormat"`
	Type            string    `validate:"required,keyType"`
	DateTimeCreated time.Time `validate:"required"`
	UserID          string    `validate:"required,uuid4"`
}

// Validate for validating SigningKeyMeta struct
func (k *SigningKeyMeta) Validate() error {
	return formatValidationError(validators.New().Struct(k))
}

// SigningKeyQuery filters and pages signing key metadata.
type SigningKeyQuery struct {
	UserID          string    `validate:"omitempty,uuid4"`
	KeyPairID       string    `validate:"omitempty,uuid4"`
	Format          string    `validate:"omitempty,signFormat"`
	Type            string    `validate:"omitempty,oneof=symmetric private public"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit     int    `validate:"omitempty,gt=0"`
	Offset    int    `validate:"omitempty,gte=0"`
	SortBy    string `validate:"omitempty,oneof=date_time_created format type"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewSigningKeyQuery creates a SigningKeyQuery with default values.
func NewSigningKeyQuery() *SigningKeyQuery {
	return &SigningKeyQuery{}
}

// Validate for validating SigningKeyQuery struct
func (q *SigningKeyQuery) Validate() error {
	return formatValidationError(validators.New().Struct(q))
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
