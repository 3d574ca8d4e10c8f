// Package token defines the HS256 JWT companion used next to text signing.
package token

import (
	"errors"
	"time"
)

// Token errors
var (
	ErrTokenMalformed  = errors.New("token: malformed")
	ErrEmptySecret     = errors.New("token: secret is empty")
	ErrInvalidLifetime = errors.New("token: lifetime must be positive")
)

// Processor issues and checks tokens carrying exactly the sub, aud and exp claims.
type Processor interface {
	// Sign returns a compact HS256 token for sub and aud that expires after lifetime.
	Sign(sub, aud string, lifetime time.Duration) (string, error)

	// Verify reports whether the token is correctly signed, unexpired and issued for aud.
	// Rejections are (false, nil); a token that cannot be parsed at all is ErrTokenMalformed.
	Verify(token, aud string) (bool, error)
}
