package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/domain/token"
	"github.com/luffy2025/rcli/internal/pkg/fileutil"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// DefaultLeeway is the clock skew tolerated on the exp claim.
const DefaultLeeway = 60 * time.Second

// Claims is the full claim set of an issued token.
type Claims struct {
	Subject   string           `json:"sub"`
	Audience  string           `json:"aud"`
	ExpiresAt *jwt.NumericDate `json:"exp"`
}

func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) { return c.ExpiresAt, nil }
func (c Claims) GetIssuedAt() (*jwt.NumericDate, error)       { return nil, nil }
func (c Claims) GetNotBefore() (*jwt.NumericDate, error)      { return nil, nil }
func (c Claims) GetIssuer() (string, error)                   { return "", nil }
func (c Claims) GetSubject() (string, error)                  { return c.Subject, nil }
func (c Claims) GetAudience() (jwt.ClaimStrings, error) {
	return jwt.ClaimStrings{c.Audience}, nil
}

// jwtProcessor struct that implements the token Processor interface with HS256
type jwtProcessor struct {
	logger logger.Logger
	secret []byte
	now    func() time.Time
}

// ProcessorOption configures a jwtProcessor.
type ProcessorOption func(*jwtProcessor)

// WithClock replaces time.Now for issuing and validating tokens.
func WithClock(now func() time.Time) ProcessorOption {
	return func(p *jwtProcessor) {
		p.now = now
	}
}

// NewJWTProcessor creates and returns a new instance of jwtProcessor
func NewJWTProcessor(secret []byte, logger logger.Logger, opts ...ProcessorOption) (token.Processor, error) {
	if len(secret) == 0 {
		return nil, token.ErrEmptySecret
	}

	p := &jwtProcessor{
		logger: logger,
		secret: append([]byte(nil), secret...),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// LoadJWTProcessor reads the secret from path ("-" for stdin), trimming surrounding whitespace.
func LoadJWTProcessor(path string, logger logger.Logger, opts ...ProcessorOption) (token.Processor, error) {
	secret, err := fileutil.ReadTrimmed(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}
	return NewJWTProcessor([]byte(secret), logger, opts...)
}

// Sign issues an HS256 token for sub and aud.
func (p *jwtProcessor) Sign(sub, aud string, lifetime time.Duration) (string, error) {
	if lifetime <= 0 {
		return "", fmt.Errorf("%w: got %s", token.ErrInvalidLifetime, lifetime)
	}

	claims := Claims{
		Subject:   sub,
		Audience:  aud,
		ExpiresAt: jwt.NewNumericDate(p.now().Add(lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	p.logger.Info(fmt.Sprintf("Issued token for audience %s", aud))
	return signed, nil
}

// Verify checks signature, expiry and audience.
func (p *jwtProcessor) Verify(tokenString, aud string) (bool, error) {
	parser := jwt.NewParser(
		jwt.WithAudience(aud),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(DefaultLeeway),
		jwt.WithTimeFunc(p.now),
	)

	_, err := parser.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (any, error) {
		return p.secret, nil
	})
	if err == nil {
		p.logger.Info(fmt.Sprintf("Token accepted for audience %s", aud))
		return true, nil
	}

	if errors.Is(err, jwt.ErrTokenMalformed) {
		return false, fmt.Errorf("%w: %w", token.ErrTokenMalformed, err)
	}

	p.logger.Warn(fmt.Sprintf("Token rejected: %v", err))
	return false, nil
}

// GenerateSecret returns a printable HS256 secret of length characters.
func GenerateSecret(passwords textsign.PasswordGenerator, length int) (string, error) {
	secret, err := passwords.Generate(textsign.PasswordOptions{Length: length})
	if err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return secret, nil
}
