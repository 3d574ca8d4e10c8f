//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSigningKeyMetaValidation(t *testing.T) {
	valid := func() *SigningKeyMeta {
		return &SigningKeyMeta{
			ID:              uuid.NewString(),
			KeyPairID:       uuid.NewString(),
			Format:          "ed25519",
			Type:            "private",
			DateTimeCreated: time.Now(),
			UserID:          uuid.NewString(),
		}
	}

	tests := []struct {
		name    string
		mutate  func(*SigningKeyMeta)
		wantErr bool
	}{
		{"valid", func(*SigningKeyMeta) {}, false},
		{"valid symmetric", func(k *SigningKeyMeta) { k.Format = "blake3"; k.Type = "symmetric" }, false},
		{"invalid id", func(k *SigningKeyMeta) { k.ID = "not-a-uuid" }, true},
		{"missing key pair id", func(k *SigningKeyMeta) { k.KeyPairID = "" }, true},
		{"unsupported format", func(k *SigningKeyMeta) { k.Format = "rsa" }, true},
		{"type mismatch", func(k *SigningKeyMeta) { k.Type = "symmetric" }, true},
		{"missing creation time", func(k *SigningKeyMeta) { k.DateTimeCreated = time.Time{} }, true},
		{"invalid user id", func(k *SigningKeyMeta) { k.UserID = "alice" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := valid()
			tt.mutate(key)

			err := key.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSigningKeyQueryValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   *SigningKeyQuery
		wantErr bool
	}{
		{"empty", NewSigningKeyQuery(), false},
		{"full", &SigningKeyQuery{
			UserID:    uuid.NewString(),
			Format:    "chacha20poly1305",
			Type:      "symmetric",
			Limit:     10,
			Offset:    5,
			SortBy:    "date_time_created",
			SortOrder: "desc",
		}, false},
		{"unknown format", &SigningKeyQuery{Format: "aes"}, true},
		{"unknown type", &SigningKeyQuery{Type: "secret"}, true},
		{"negative limit", &SigningKeyQuery{Limit: -1}, true},
		{"unsupported sort column", &SigningKeyQuery{SortBy: "id; DROP TABLE"}, true},
		{"unsupported sort order", &SigningKeyQuery{SortOrder: "up"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
