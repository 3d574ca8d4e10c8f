package connector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/config"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// localVaultConnector stores key bytes as files below a key store directory:
// <directory>/<keyPairID>/<keyID>-<keyType>.key
type localVaultConnector struct {
	directory string
	logger    logger.Logger
}

// NewLocalVaultConnector creates the key store directory if needed and returns a VaultConnector on it
func NewLocalVaultConnector(settings *config.KeyStoreSettings, logger logger.Logger) (keys.VaultConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(settings.Directory, 0700); err != nil {
		return nil, fmt.Errorf("failed to create key store directory: %w", err)
	}

	return &localVaultConnector{
		directory: settings.Directory,
		logger:    logger,
	}, nil
}

// Upload writes data under a fresh key ID and returns its metadata
func (c *localVaultConnector) Upload(ctx context.Context, data []byte, userID, keyPairID, keyType string, format textsign.Format) (*keys.SigningKeyMeta, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	meta := &keys.SigningKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Format:          format.String(),
		Type:            keyType,
		DateTimeCreated: time.Now().UTC(),
		UserID:          userID,
	}
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	path, err := c.keyPath(meta.ID, keyPairID, keyType)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create key pair directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return nil, fmt.Errorf("failed to write key: %w", err)
	}

	c.logger.Info(fmt.Sprintf("Stored %s %s key with id %s", format, keyType, meta.ID))
	return meta, nil
}

// Download reads a stored key
func (c *localVaultConnector) Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := c.keyPath(keyID, keyPairID, keyType)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", keys.ErrKeyNotFound, keyID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	return data, nil
}

// Delete removes a stored key and its key pair directory once that is empty
func (c *localVaultConnector) Delete(ctx context.Context, keyID, keyPairID, keyType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := c.keyPath(keyID, keyPairID, keyType)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", keys.ErrKeyNotFound, keyID)
		}
		return fmt.Errorf("failed to delete key: %w", err)
	}

	// fails while the other half of a key pair is still present
	_ = os.Remove(filepath.Dir(path))

	c.logger.Info(fmt.Sprintf("Deleted key with id %s", keyID))
	return nil
}

// keyPath rejects anything but UUIDs so IDs cannot escape the key store directory
func (c *localVaultConnector) keyPath(keyID, keyPairID, keyType string) (string, error) {
	if _, err := uuid.Parse(keyID); err != nil {
		return "", fmt.Errorf("invalid key id %q: %w", keyID, err)
	}
	if _, err := uuid.Parse(keyPairID); err != nil {
		return "", fmt.Errorf("invalid key pair id %q: %w", keyPairID, err)
	}

	switch keyType {
	case textsign.KeyTypeSymmetric, textsign.KeyTypePrivate, textsign.KeyTypePublic:
	default:
		return "", fmt.Errorf("invalid key type %q", keyType)
	}

	return filepath.Join(c.directory, keyPairID, fmt.Sprintf("%s-%s.key", keyID, keyType)), nil
}
