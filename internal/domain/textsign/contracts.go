package textsign

import (
	"context"
	"io"
)

// TextSigner signs the full content of a reader.
type TextSigner interface {
	// Sign reads r to EOF and returns the raw signature bytes.
	Sign(r io.Reader) ([]byte, error)
}

// TextVerifier verifies the full content of a reader against a raw signature.
type TextVerifier interface {
	// Verify reads r to EOF and reports whether signature matches the content.
	// A mismatch is (false, nil); a malformed signature is an error.
	Verify(r io.Reader, signature []byte) (bool, error)
}

// TextProcessor signs and verifies with the same key material (BLAKE3, ChaCha20-Poly1305).
type TextProcessor interface {
	TextSigner
	TextVerifier
}

// KeyMaterialMode chooses how the entropy source produces key bytes.
type KeyMaterialMode string

const (
	// KeyMaterialCharset draws key bytes from the printable password character pools.
	// The key space is smaller than that of uniformly random bytes.
	KeyMaterialCharset KeyMaterialMode = "charset"
	// KeyMaterialFullRange draws uniformly random bytes over 0x00-0xff.
	KeyMaterialFullRange KeyMaterialMode = "random"
)

// PasswordOptions configures the entropy source. Exclusion flags remove a character class.
type PasswordOptions struct {
	Length   int `validate:"min=4"`
	NoUpper  bool
	NoLower  bool
	NoNumber bool
	NoSymbol bool
}

// PasswordGenerator produces printable passwords and raw key material.
type PasswordGenerator interface {
	// Generate returns a password of exactly opts.Length bytes containing at least one
	// character of every included class.
	Generate(opts PasswordOptions) (string, error)

	// GenerateKeyMaterial returns size bytes produced according to mode.
	GenerateKeyMaterial(size int, mode KeyMaterialMode) ([]byte, error)
}

// KeyGenerator creates fresh key buffers for each format.
type KeyGenerator interface {
	// GenerateBlake3Key returns one 32-byte key drawn from the entropy source.
	GenerateBlake3Key(mode KeyMaterialMode) ([][]byte, error)

	// GenerateEd25519Keys returns the 32-byte seed followed by the derived 32-byte public key.
	GenerateEd25519Keys() ([][]byte, error)

	// GenerateChaCha20Poly1305Key returns one 32-byte key from a secure RNG.
	GenerateChaCha20Poly1305Key() ([][]byte, error)
}

// GenerateOptions configures key generation through the text service.
type GenerateOptions struct {
	// KeyMode applies to FormatBlake3 only.
	KeyMode KeyMaterialMode
}

// TextService is the format-dispatching entry point used by the CLI.
type TextService interface {
	// Sign signs the input ("-" for stdin, otherwise a file path) with the key at keyPath and
	// returns the signature as URL-safe base64 without padding.
	Sign(ctx context.Context, input, keyPath string, format Format) (string, error)

	// Verify checks a URL-safe base64 signature over the input with the key at keyPath.
	Verify(ctx context.Context, input, keyPath, signature string, format Format) (bool, error)

	// Generate creates fresh key buffers for format, ordered as format.KeyFileNames().
	Generate(ctx context.Context, format Format, opts GenerateOptions) ([][]byte, error)
}
