package app

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/infrastructure/cryptography"
	"github.com/luffy2025/rcli/internal/pkg/fileutil"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// EncodeSignature renders raw signature bytes as URL-safe base64 without padding
func EncodeSignature(signature []byte) string {
	return base64.RawURLEncoding.EncodeToString(signature)
}

// DecodeSignature parses URL-safe unpadded base64 signature text
func DecodeSignature(signature string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(signature))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", textsign.ErrBase64Decode, err)
	}
	return raw, nil
}

// textService implements the TextService interface by dispatching on the format tag
type textService struct {
	generator textsign.KeyGenerator
	logger    logger.Logger
	opts      []cryptography.Option
}

// NewTextService creates a new textService instance.
// opts are handed to every processor that draws randomness.
func NewTextService(generator textsign.KeyGenerator, logger logger.Logger, opts ...cryptography.Option) (textsign.TextService, error) {
	if generator == nil {
		return nil, fmt.Errorf("key generator is required")
	}
	return &textService{
		generator: generator,
		logger:    logger,
		opts:      opts,
	}, nil
}

// Sign signs the whole input with the key at keyPath
func (s *textService) Sign(ctx context.Context, input, keyPath string, format textsign.Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	signer, err := s.loadSigner(keyPath, format)
	if err != nil {
		return "", err
	}

	r, err := fileutil.OpenInput(input)
	if err != nil {
		return "", err
	}
	defer r.Close()

	signature, err := signer.Sign(r)
	if err != nil {
		return "", fmt.Errorf("failed to sign with %s: %w", format, err)
	}

	return EncodeSignature(signature), nil
}

// Verify checks signature over the whole input with the key at keyPath
func (s *textService) Verify(ctx context.Context, input, keyPath, signature string, format textsign.Format) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	raw, err := DecodeSignature(signature)
	if err != nil {
		return false, err
	}

	verifier, err := s.loadVerifier(keyPath, format)
	if err != nil {
		return false, err
	}

	r, err := fileutil.OpenInput(input)
	if err != nil {
		return false, err
	}
	defer r.Close()

	valid, err := verifier.Verify(r, raw)
	if err != nil {
		return false, fmt.Errorf("failed to verify with %s: %w", format, err)
	}
	return valid, nil
}

// Generate creates a fresh key set for format
func (s *textService) Generate(ctx context.Context, format textsign.Format, opts textsign.GenerateOptions) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch format {
	case textsign.FormatBlake3:
		if opts.KeyMode == "" {
			return nil, fmt.Errorf("a key material mode is required for %s", format)
		}
		return s.generator.GenerateBlake3Key(opts.KeyMode)
	case textsign.FormatEd25519:
		return s.generator.GenerateEd25519Keys()
	case textsign.FormatChaCha20Poly1305:
		return s.generator.GenerateChaCha20Poly1305Key()
	default:
		return nil, fmt.Errorf("%w: %q", textsign.ErrUnsupportedFormat, format)
	}
}

func (s *textService) loadSigner(keyPath string, format textsign.Format) (textsign.TextSigner, error) {
	switch format {
	case textsign.FormatBlake3:
		return cryptography.LoadBlake3Processor(keyPath, s.logger)
	case textsign.FormatEd25519:
		return cryptography.LoadEd25519Signer(keyPath, s.logger)
	case textsign.FormatChaCha20Poly1305:
		return cryptography.LoadChaCha20Poly1305Processor(keyPath, s.logger, s.opts...)
	default:
		return nil, fmt.Errorf("%w: %q", textsign.ErrUnsupportedFormat, format)
	}
}

func (s *textService) loadVerifier(keyPath string, format textsign.Format) (textsign.TextVerifier, error) {
	switch format {
	case textsign.FormatBlake3:
		return cryptography.LoadBlake3Processor(keyPath, s.logger)
	case textsign.FormatEd25519:
		return cryptography.LoadEd25519Verifier(keyPath, s.logger)
	case textsign.FormatChaCha20Poly1305:
		return cryptography.LoadChaCha20Poly1305Processor(keyPath, s.logger, s.opts...)
	default:
		return nil, fmt.Errorf("%w: %q", textsign.ErrUnsupportedFormat, format)
	}
}
