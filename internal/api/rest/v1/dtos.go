package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/pkg/validators"
)

// UploadKeyRequest is the body of POST /keys
type UploadKeyRequest struct {
	UserID  string `json:"user_id" validate:"required,uuid4"`
	Format  string `json:"format" validate:"required,signFormat"`
	KeyMode string `json:"key_mode" validate:"omitempty,oneof=charset random"`
}

// Validate for validating UploadKeyRequest struct
func (r *UploadKeyRequest) Validate() error {
	return formatValidationError(validators.New().Struct(r))
}

// SignTextRequest is the body of POST /text/sign
type SignTextRequest struct {
	KeyID   string `json:"key_id" validate:"required,uuid4"`
	Content string `json:"content"`
}

// Validate for validating SignTextRequest struct
func (r *SignTextRequest) Validate() error {
	return formatValidationError(validators.New().Struct(r))
}

// VerifyTextRequest is the body of POST /text/verify
type VerifyTextRequest struct {
	KeyID     string `json:"key_id" validate:"required,uuid4"`
	Content   string `json:"content"`
	Signature string `json:"signature" validate:"required"`
}

// Validate for validating VerifyTextRequest struct
func (r *VerifyTextRequest) Validate() error {
	return formatValidationError(validators.New().Struct(r))
}

// SigningKeyMetaResponse describes a stored signing key
type SigningKeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Format          string    `json:"format"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
	UserID          string    `json:"user_id"`
}

func newSigningKeyMetaResponse(meta *keys.SigningKeyMeta) SigningKeyMetaResponse {
	return SigningKeyMetaResponse{
		ID:              meta.ID,
		KeyPairID:       meta.KeyPairID,
		Format:          meta.Format,
		Type:            meta.Type,
		DateTimeCreated: meta.DateTimeCreated,
		UserID:          meta.UserID,
	}
}

// SignTextResponse carries a URL-safe unpadded base64 signature
type SignTextResponse struct {
	Signature string `json:"signature"`
}

// VerifyTextResponse carries the verification result
type VerifyTextResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse represents an error message
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message
type InfoResponse struct {
	Message string `json:"message"`
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
		return fmt.Errorf("%v", messages)
	}
	return err
}
