package cryptography

import (
	"crypto/cipher"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// chaCha20Poly1305Processor seals the input and uses the envelope ciphertext||nonce as its signature
type chaCha20Poly1305Processor struct {
	logger logger.Logger
	aead   cipher.AEAD
	rand   io.Reader
}

// NewChaCha20Poly1305Processor creates and returns a new instance of chaCha20Poly1305Processor
func NewChaCha20Poly1305Processor(key []byte, logger logger.Logger, opts ...Option) (textsign.TextProcessor, error) {
	if err := checkKeySize("chacha20poly1305", key); err != nil {
		return nil, err
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create chacha20poly1305 cipher: %w", err)
	}

	o := newOptions(opts)
	return &chaCha20Poly1305Processor{
		logger: logger,
		aead:   aead,
		rand:   o.rand,
	}, nil
}

// Sign seals the whole input under a fresh nonce and returns ciphertext||nonce.
func (p *chaCha20Poly1305Processor) Sign(r io.Reader) ([]byte, error) {
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	nonce := make([]byte, chacha20poly1305.NonceSize)
	if _, err := io.ReadFull(p.rand, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	envelope := p.aead.Seal(make([]byte, 0, len(plaintext)+p.aead.Overhead()+len(nonce)), nonce, plaintext, nil)
	envelope = append(envelope, nonce...)

	p.logger.Info("ChaCha20-Poly1305 signing succeeded")
	return envelope, nil
}

// Verify opens the envelope and compares the recovered plaintext with the input.
// A failed authentication tag is reported as (false, nil).
func (p *chaCha20Poly1305Processor) Verify(r io.Reader, signature []byte) (bool, error) {
	if len(signature) < chacha20poly1305.NonceSize+p.aead.Overhead() {
		return false, fmt.Errorf("%w: chacha20poly1305 envelope has %d bytes, need at least %d",
			textsign.ErrInvalidSignatureLength, len(signature), chacha20poly1305.NonceSize+p.aead.Overhead())
	}

	message, err := io.ReadAll(r)
	if err != nil {
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	plaintext, err := p.open(signature)
	if errors.Is(err, textsign.ErrDecryptionFailed) {
		p.logger.Info("ChaCha20-Poly1305 verification finished: valid=false")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	valid := subtle.ConstantTimeCompare(plaintext, message) == 1
	p.logger.Info(fmt.Sprintf("ChaCha20-Poly1305 verification finished: valid=%t", valid))
	return valid, nil
}

func (p *chaCha20Poly1305Processor) open(envelope []byte) ([]byte, error) {
	split := len(envelope) - chacha20poly1305.NonceSize
	ciphertext, nonce := envelope[:split], envelope[split:]

	plaintext, err := p.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", textsign.ErrDecryptionFailed, err)
	}
	return plaintext, nil
}
