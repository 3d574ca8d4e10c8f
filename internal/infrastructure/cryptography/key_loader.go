package cryptography

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// LoadKey reads the first size bytes of the file at path. Trailing bytes are ignored.
func LoadKey(path string, size int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open key file: %w", err)
	}
	defer f.Close()

	key := make([]byte, size)
	n, err := io.ReadFull(f, key)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("%w: %s holds %d bytes, need %d", textsign.ErrKeyTooShort, path, n, size)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	return key, nil
}

// LoadBlake3Processor loads a 32-byte BLAKE3 key.
func LoadBlake3Processor(path string, logger logger.Logger) (textsign.TextProcessor, error) {
	key, err := LoadKey(path, textsign.KeySize)
	if err != nil {
		return nil, err
	}
	return NewBlake3Processor(key, logger)
}

// LoadEd25519Signer loads a 32-byte Ed25519 seed.
func LoadEd25519Signer(path string, logger logger.Logger) (textsign.TextSigner, error) {
	seed, err := LoadKey(path, textsign.KeySize)
	if err != nil {
		return nil, err
	}
	return NewEd25519Signer(seed, logger)
}

// LoadEd25519Verifier loads a 32-byte Ed25519 public key.
func LoadEd25519Verifier(path string, logger logger.Logger) (textsign.TextVerifier, error) {
	publicKey, err := LoadKey(path, textsign.KeySize)
	if err != nil {
		return nil, err
	}
	return NewEd25519Verifier(publicKey, logger)
}

// LoadChaCha20Poly1305Processor loads a 32-byte ChaCha20-Poly1305 key.
func LoadChaCha20Poly1305Processor(path string, logger logger.Logger, opts ...Option) (textsign.TextProcessor, error) {
	key, err := LoadKey(path, textsign.KeySize)
	if err != nil {
		return nil, err
	}
	return NewChaCha20Poly1305Processor(key, logger, opts...)
}
