package keys

import (
	"context"

	"github.com/luffy2025/rcli/internal/domain/textsign"
)

// SigningKeyUploadService generates signing keys and stores them with their metadata.
type SigningKeyUploadService interface {
	// Upload generates a key set for format and stores every buffer of it.
	// It returns one SigningKeyMeta per stored buffer, in generation order.
	Upload(ctx context.Context, userID string, format textsign.Format, opts textsign.GenerateOptions) ([]*SigningKeyMeta, error)
}

// SigningKeyMetadataService defines methods for managing signing key metadata and deleting keys.
type SigningKeyMetadataService interface {
	// List retrieves signing key metadata matching query.
	List(ctx context.Context, query *SigningKeyQuery) ([]*SigningKeyMeta, error)

	// GetByID retrieves the metadata of a signing key by its unique ID.
	GetByID(ctx context.Context, keyID string) (*SigningKeyMeta, error)

	// DeleteByID deletes a signing key and its metadata by ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// TextSigningService signs and verifies text with stored keys.
type TextSigningService interface {
	// SignWithKey signs content with the stored key keyID and returns URL-safe unpadded base64.
	SignWithKey(ctx context.Context, keyID string, content []byte) (string, error)

	// VerifyWithKey checks a URL-safe unpadded base64 signature over content with the stored key keyID.
	// For ed25519 either half of the key pair may be referenced.
	VerifyWithKey(ctx context.Context, keyID string, content []byte, signature string) (bool, error)
}

// SigningKeyRepository defines the interface for signing key metadata persistence
type SigningKeyRepository interface {
	Create(ctx context.Context, key *SigningKeyMeta) error
	List(ctx context.Context, query *SigningKeyQuery) ([]*SigningKeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*SigningKeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}

// VaultConnector stores raw key bytes outside the metadata database.
type VaultConnector interface {
	// Upload stores key bytes and returns the metadata describing them.
	Upload(ctx context.Context, data []byte, userID, keyPairID, keyType string, format textsign.Format) (*SigningKeyMeta, error)

	// Download retrieves a key's bytes by its IDs and type.
	Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error)

	// Delete removes a key by its IDs and type.
	Delete(ctx context.Context, keyID, keyPairID, keyType string) error
}
