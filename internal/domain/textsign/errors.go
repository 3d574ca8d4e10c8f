package textsign

import "errors"

// Key errors
var (
	ErrKeyTooShort       = errors.New("key: file shorter than required key size")
	ErrKeyTypeMismatch   = errors.New("key: key type cannot be used for this operation")
	ErrUnsupportedFormat = errors.New("format: unsupported signing format")
)

// Signature errors
var (
	ErrInvalidSignatureLength = errors.New("signature: invalid length")
	ErrDecryptionFailed       = errors.New("signature: decryption failed")
	ErrBase64Decode           = errors.New("signature: invalid base64 encoding")
)

// Entropy source errors
var (
	ErrInvalidPasswordLength = errors.New("password: length must be at least 4 with one character class enabled")
)
