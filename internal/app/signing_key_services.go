package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/infrastructure/cryptography"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// signingKeyUploadService implements the SigningKeyUploadService interface
type signingKeyUploadService struct {
	vaultConnector keys.VaultConnector
	signingKeyRepo keys.SigningKeyRepository
	textService    textsign.TextService
	logger         logger.Logger
}

// NewSigningKeyUploadService creates a new signingKeyUploadService instance
func NewSigningKeyUploadService(
	vaultConnector keys.VaultConnector,
	signingKeyRepo keys.SigningKeyRepository,
	textService textsign.TextService,
	logger logger.Logger,
) (keys.SigningKeyUploadService, error) {
	return &signingKeyUploadService{
		vaultConnector: vaultConnector,
		signingKeyRepo: signingKeyRepo,
		textService:    textService,
		logger:         logger,
	}, nil
}

// Upload generates a key set for format and stores every buffer with its metadata
func (s *signingKeyUploadService) Upload(ctx context.Context, userID string, format textsign.Format, opts textsign.GenerateOptions) ([]*keys.SigningKeyMeta, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", textsign.ErrUnsupportedFormat, format)
	}

	buffers, err := s.textService.Generate(ctx, format, opts)
	if err != nil {
		return nil, err
	}

	keyTypes := format.KeyTypes()
	if len(buffers) != len(keyTypes) {
		return nil, fmt.Errorf("generated %d key buffers for %s, expected %d", len(buffers), format, len(keyTypes))
	}

	keyPairID := uuid.NewString()
	keyMetas := make([]*keys.SigningKeyMeta, 0, len(buffers))
	for i, keyType := range keyTypes {
		keyMeta, err := s.vaultConnector.Upload(ctx, buffers[i], userID, keyPairID, keyType, format)
		if err != nil {
			return nil, fmt.Errorf("failed to store %s key: %w", keyType, err)
		}

		if err := s.signingKeyRepo.Create(ctx, keyMeta); err != nil {
			return nil, fmt.Errorf("failed to store %s key metadata: %w", keyType, err)
		}
		keyMetas = append(keyMetas, keyMeta)
	}

	s.logger.Info(fmt.Sprintf("Uploaded %s key set %s", format, keyPairID))
	return keyMetas, nil
}

// signingKeyMetadataService implements the SigningKeyMetadataService interface
type signingKeyMetadataService struct {
	vaultConnector keys.VaultConnector
	signingKeyRepo keys.SigningKeyRepository
	logger         logger.Logger
}

// NewSigningKeyMetadataService creates a new signingKeyMetadataService instance
func NewSigningKeyMetadataService(vaultConnector keys.VaultConnector, signingKeyRepo keys.SigningKeyRepository, logger logger.Logger) (keys.SigningKeyMetadataService, error) {
	return &signingKeyMetadataService{
		vaultConnector: vaultConnector,
		signingKeyRepo: signingKeyRepo,
		logger:         logger,
	}, nil
}

// List retrieves signing key metadata matching query
func (s *signingKeyMetadataService) List(ctx context.Context, query *keys.SigningKeyQuery) ([]*keys.SigningKeyMeta, error) {
	keyMetas, err := s.signingKeyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list signing keys: %w", err)
	}
	return keyMetas, nil
}

// GetByID retrieves the metadata of a signing key by its ID
func (s *signingKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.SigningKeyMeta, error) {
	keyMeta, err := s.signingKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get signing key: %w", err)
	}
	return keyMeta, nil
}

// DeleteByID deletes a signing key from the vault and its metadata from the repository
func (s *signingKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	keyMeta, err := s.GetByID(ctx, keyID)
	if err != nil {
		return err
	}

	if err := s.vaultConnector.Delete(ctx, keyID, keyMeta.KeyPairID, keyMeta.Type); err != nil {
		return fmt.Errorf("failed to delete key from vault: %w", err)
	}

	if err := s.signingKeyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key from database: %w", err)
	}
	return nil
}

// textSigningService implements the TextSigningService interface on stored keys
type textSigningService struct {
	vaultConnector keys.VaultConnector
	signingKeyRepo keys.SigningKeyRepository
	logger         logger.Logger
	opts           []cryptography.Option
}

// NewTextSigningService creates a new textSigningService instance
func NewTextSigningService(vaultConnector keys.VaultConnector, signingKeyRepo keys.SigningKeyRepository, logger logger.Logger, opts ...cryptography.Option) (keys.TextSigningService, error) {
	return &textSigningService{
		vaultConnector: vaultConnector,
		signingKeyRepo: signingKeyRepo,
		logger:         logger,
		opts:           opts,
	}, nil
}

// SignWithKey signs content with a symmetric key or the private half of an ed25519 pair
func (s *textSigningService) SignWithKey(ctx context.Context, keyID string, content []byte) (string, error) {
	keyMeta, err := s.signingKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return "", err
	}

	format := textsign.Format(keyMeta.Format)
	if keyMeta.Type == textsign.KeyTypePublic {
		return "", fmt.Errorf("%w: %s key %s cannot sign", textsign.ErrKeyTypeMismatch, keyMeta.Type, keyID)
	}

	key, err := s.vaultConnector.Download(ctx, keyMeta.ID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return "", err
	}

	var signer textsign.TextSigner
	switch format {
	case textsign.FormatBlake3:
		signer, err = cryptography.NewBlake3Processor(key, s.logger)
	case textsign.FormatEd25519:
		signer, err = cryptography.NewEd25519Signer(key, s.logger)
	case textsign.FormatChaCha20Poly1305:
		signer, err = cryptography.NewChaCha20Poly1305Processor(key, s.logger, s.opts...)
	default:
		return "", fmt.Errorf("%w: %q", textsign.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return "", err
	}

	signature, err := signer.Sign(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to sign with %s: %w", format, err)
	}
	return EncodeSignature(signature), nil
}

// VerifyWithKey checks signature over content. For ed25519 the public half of the
// referenced key pair is used.
func (s *textSigningService) VerifyWithKey(ctx context.Context, keyID string, content []byte, signature string) (bool, error) {
	raw, err := DecodeSignature(signature)
	if err != nil {
		return false, err
	}

	keyMeta, err := s.signingKeyRepo.GetByID(ctx, keyID)
	if err != nil {
		return false, err
	}

	if keyMeta.Type == textsign.KeyTypePrivate {
		keyMeta, err = s.publicHalf(ctx, keyMeta)
		if err != nil {
			return false, err
		}
	}

	key, err := s.vaultConnector.Download(ctx, keyMeta.ID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return false, err
	}

	format := textsign.Format(keyMeta.Format)
	var verifier textsign.TextVerifier
	switch format {
	case textsign.FormatBlake3:
		verifier, err = cryptography.NewBlake3Processor(key, s.logger)
	case textsign.FormatEd25519:
		verifier, err = cryptography.NewEd25519Verifier(key, s.logger)
	case textsign.FormatChaCha20Poly1305:
		verifier, err = cryptography.NewChaCha20Poly1305Processor(key, s.logger, s.opts...)
	default:
		return false, fmt.Errorf("%w: %q", textsign.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return false, err
	}

	valid, err := verifier.Verify(bytes.NewReader(content), raw)
	if err != nil {
		return false, fmt.Errorf("failed to verify with %s: %w", format, err)
	}
	return valid, nil
}

func (s *textSigningService) publicHalf(ctx context.Context, private *keys.SigningKeyMeta) (*keys.SigningKeyMeta, error) {
	pair, err := s.signingKeyRepo.List(ctx, &keys.SigningKeyQuery{
		KeyPairID: private.KeyPairID,
		Type:      textsign.KeyTypePublic,
	})
	if err != nil {
		return nil, err
	}
	if len(pair) == 0 {
		return nil, fmt.Errorf("%w: public key of pair %s", keys.ErrKeyNotFound, private.KeyPairID)
	}
	return pair[0], nil
}
