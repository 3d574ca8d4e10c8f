package cryptography

import (
	"fmt"

	"github.com/luffy2025/rcli/internal/domain/textsign"
)

func checkKeySize(name string, key []byte) error {
	if len(key) < textsign.KeySize {
		return fmt.Errorf("%w: %s key has %d bytes, need %d", textsign.ErrKeyTooShort, name, len(key), textsign.KeySize)
	}
	if len(key) > textsign.KeySize {
		return fmt.Errorf("%s key must be %d bytes, got %d", name, textsign.KeySize, len(key))
	}
	return nil
}
