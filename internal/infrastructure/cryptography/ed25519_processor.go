package cryptography

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// ed25519Signer struct that implements the TextSigner interface
type ed25519Signer struct {
	logger     logger.Logger
	privateKey ed25519.PrivateKey
}

// NewEd25519Signer derives the signing key from a 32-byte seed
func NewEd25519Signer(seed []byte, logger logger.Logger) (textsign.TextSigner, error) {
	if err := checkKeySize("ed25519 private", seed); err != nil {
		return nil, err
	}

	return &ed25519Signer{
		logger:     logger,
		privateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// Sign reads r to EOF and returns the 64-byte Ed25519 signature.
func (s *ed25519Signer) Sign(r io.Reader) ([]byte, error) {
	message, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	signature := ed25519.Sign(s.privateKey, message)
	s.logger.Info("Ed25519 signing succeeded")
	return signature, nil
}

// ed25519Verifier struct that implements the TextVerifier interface
type ed25519Verifier struct {
	logger    logger.Logger
	publicKey ed25519.PublicKey
}

// NewEd25519Verifier creates a verifier for a 32-byte public key
func NewEd25519Verifier(publicKey []byte, logger logger.Logger) (textsign.TextVerifier, error) {
	if err := checkKeySize("ed25519 public", publicKey); err != nil {
		return nil, err
	}

	pk := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(pk, publicKey)
	return &ed25519Verifier{
		logger:    logger,
		publicKey: pk,
	}, nil
}

// Verify reads r to EOF and checks the signature with the public key.
func (v *ed25519Verifier) Verify(r io.Reader, signature []byte) (bool, error) {
	if len(signature) != ed25519.SignatureSize {
		return false, fmt.Errorf("%w: ed25519 signature has %d bytes, want %d",
			textsign.ErrInvalidSignatureLength, len(signature), ed25519.SignatureSize)
	}

	message, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	valid := ed25519.Verify(v.publicKey, message, signature)
	v.logger.Info(fmt.Sprintf("Ed25519 verification finished: valid=%t", valid))
	return valid, nil
}
