//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type signingKey struct {
	Format string `validate:"required,signFormat"`
	Type   string `validate:"required,keyType"`
}

func TestSignFormatValidation(t *testing.T) {
	validate := New()

	tests := []struct {
		name    string
		key     signingKey
		wantErr bool
	}{
		{"blake3 symmetric", signingKey{Format: "blake3", Type: "symmetric"}, false},
		{"chacha20poly1305 symmetric", signingKey{Format: "chacha20poly1305", Type: "symmetric"}, false},
		{"ed25519 private", signingKey{Format: "ed25519", Type: "private"}, false},
		{"ed25519 public", signingKey{Format: "ed25519", Type: "public"}, false},
		{"ed25519 symmetric", signingKey{Format: "ed25519", Type: "symmetric"}, true},
		{"blake3 private", signingKey{Format: "blake3", Type: "private"}, true},
		{"upper case format", signingKey{Format: "BLAKE3", Type: "symmetric"}, true},
		{"unknown format", signingKey{Format: "rsa", Type: "private"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.key)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
