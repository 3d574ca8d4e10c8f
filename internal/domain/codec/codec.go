// Package codec defines the base64 text codecs offered next to the signing engine.
package codec

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedBase64Format is returned for an unknown base64 format tag
var ErrUnsupportedBase64Format = errors.New("codec: unsupported base64 format")

// Base64Format selects the base64 alphabet and padding
type Base64Format string

const (
	// Base64Standard is the standard alphabet with padding
	Base64Standard Base64Format = "standard"
	// Base64URLSafe is the URL-safe alphabet without padding
	Base64URLSafe Base64Format = "urlsafe"
)

// ParseBase64Format parses a base64 format tag case-insensitively
func ParseBase64Format(value string) (Base64Format, error) {
	switch Base64Format(strings.ToLower(strings.TrimSpace(value))) {
	case Base64Standard:
		return Base64Standard, nil
	case Base64URLSafe:
		return Base64URLSafe, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBase64Format, value)
	}
}

// Base64Service encodes and decodes an input ("-" for stdin, otherwise a file path).
// Surrounding whitespace of the input is ignored.
type Base64Service interface {
	Encode(ctx context.Context, input string, format Base64Format) (string, error)
	Decode(ctx context.Context, input string, format Base64Format) ([]byte, error)
}
