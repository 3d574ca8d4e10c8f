package cryptography

import (
	"fmt"
	"io"

	"github.com/cloudflare/circl/sign/ed25519"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// keyGenerator struct that implements the KeyGenerator interface
type keyGenerator struct {
	logger    logger.Logger
	passwords textsign.PasswordGenerator
	rand      io.Reader
}

// NewKeyGenerator creates and returns a new instance of keyGenerator.
// The password generator shares the configured randomness source.
func NewKeyGenerator(logger logger.Logger, opts ...Option) textsign.KeyGenerator {
	o := newOptions(opts)
	return &keyGenerator{
		logger:    logger,
		passwords: NewPasswordGenerator(logger, opts...),
		rand:      o.rand,
	}
}

// GenerateBlake3Key returns a single 32-byte key from the entropy source.
func (g *keyGenerator) GenerateBlake3Key(mode textsign.KeyMaterialMode) ([][]byte, error) {
	key, err := g.passwords.GenerateKeyMaterial(textsign.KeySize, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to generate blake3 key: %w", err)
	}

	g.logger.Info(fmt.Sprintf("Generated BLAKE3 key (mode=%s)", mode))
	return [][]byte{key}, nil
}

// GenerateEd25519Keys returns [seed, public key].
func (g *keyGenerator) GenerateEd25519Keys() ([][]byte, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(g.rand)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ed25519 keys: %w", err)
	}

	g.logger.Info("Generated Ed25519 key pair")
	return [][]byte{privateKey.Seed(), []byte(publicKey)}, nil
}

// GenerateChaCha20Poly1305Key returns a single 32-byte key.
func (g *keyGenerator) GenerateChaCha20Poly1305Key() ([][]byte, error) {
	key := make([]byte, textsign.KeySize)
	if _, err := io.ReadFull(g.rand, key); err != nil {
		return nil, fmt.Errorf("failed to generate chacha20poly1305 key: %w", err)
	}

	g.logger.Info("Generated ChaCha20-Poly1305 key")
	return [][]byte{key}, nil
}
