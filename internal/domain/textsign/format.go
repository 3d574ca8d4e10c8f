package textsign

import (
	"fmt"
	"strings"
)

// Format selects the signing algorithm for a single sign, verify or generate call
type Format string

const (
	// FormatBlake3 is the BLAKE3 keyed hash
	FormatBlake3 Format = "blake3"
	// FormatEd25519 is the Ed25519 digital signature
	FormatEd25519 Format = "ed25519"
	// FormatChaCha20Poly1305 is ChaCha20-Poly1305 authenticated encryption used as a signature
	FormatChaCha20Poly1305 Format = "chacha20poly1305"
)

// Formats returns all supported formats in a stable order
func Formats() []Format {
	return []Format{FormatBlake3, FormatEd25519, FormatChaCha20Poly1305}
}

// ParseFormat parses a format tag case-insensitively
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case FormatBlake3:
		return FormatBlake3, nil
	case FormatEd25519:
		return FormatEd25519, nil
	case FormatChaCha20Poly1305:
		return FormatChaCha20Poly1305, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, value)
	}
}

// IsValid reports whether f is one of the supported formats
func (f Format) IsValid() bool {
	_, err := ParseFormat(string(f))
	return err == nil
}

func (f Format) String() string {
	return string(f)
}

// Asymmetric reports whether the format signs and verifies with different keys
func (f Format) Asymmetric() bool {
	return f == FormatEd25519
}

// KeyFileNames returns the file names a generated key set is persisted under, in the same
// order as the buffers returned by key generation.
func (f Format) KeyFileNames() []string {
	if f.Asymmetric() {
		return []string{string(f) + ".sk", string(f) + ".pk"}
	}
	return []string{string(f) + ".key"}
}

// KeyTypes returns the key types of a generated key set, in generation order.
func (f Format) KeyTypes() []string {
	if f.Asymmetric() {
		return []string{KeyTypePrivate, KeyTypePublic}
	}
	return []string{KeyTypeSymmetric}
}
