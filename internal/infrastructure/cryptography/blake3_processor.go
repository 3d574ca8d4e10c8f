package cryptography

import (
	"crypto/subtle"
	"fmt"
	"io"

	"lukechampine.com/blake3"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// blake3Processor struct that implements the TextProcessor interface with a BLAKE3 keyed hash
type blake3Processor struct {
	logger logger.Logger
	key    []byte
}

// NewBlake3Processor creates and returns a new instance of blake3Processor
func NewBlake3Processor(key []byte, logger logger.Logger) (textsign.TextProcessor, error) {
	if err := checkKeySize("blake3", key); err != nil {
		return nil, err
	}

	k := make([]byte, textsign.KeySize)
	copy(k, key)
	return &blake3Processor{
		logger: logger,
		key:    k,
	}, nil
}

// Sign streams r through a keyed BLAKE3 hasher and returns the 32-byte digest.
func (p *blake3Processor) Sign(r io.Reader) ([]byte, error) {
	digest, err := p.digest(r)
	if err != nil {
		return nil, err
	}

	p.logger.Info("BLAKE3 signing succeeded")
	return digest, nil
}

// Verify recomputes the digest over r and compares it in constant time.
func (p *blake3Processor) Verify(r io.Reader, signature []byte) (bool, error) {
	if len(signature) != textsign.Blake3DigestSize {
		return false, fmt.Errorf("%w: blake3 signature has %d bytes, want %d",
			textsign.ErrInvalidSignatureLength, len(signature), textsign.Blake3DigestSize)
	}

	digest, err := p.digest(r)
	if err != nil {
		return false, err
	}

	valid := subtle.ConstantTimeCompare(digest, signature) == 1
	p.logger.Info(fmt.Sprintf("BLAKE3 verification finished: valid=%t", valid))
	return valid, nil
}

func (p *blake3Processor) digest(r io.Reader) ([]byte, error) {
	h := blake3.New(textsign.Blake3DigestSize, p.key)
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return h.Sum(nil), nil
}
