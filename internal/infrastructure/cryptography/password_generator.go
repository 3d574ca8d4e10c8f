package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/go-playground/validator/v10"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// Character pools leave out glyphs that are easy to confuse (I, O, l, 0).
const (
	upperPool  = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	lowerPool  = "abcdefghijkmnopqrstuvwxyz"
	numberPool = "123456789"
	symbolPool = "@#$%^&*_+=."
)

// passwordGenerator struct that implements the PasswordGenerator interface
type passwordGenerator struct {
	logger   logger.Logger
	rand     io.Reader
	validate *validator.Validate
}

// NewPasswordGenerator creates and returns a new instance of passwordGenerator
func NewPasswordGenerator(logger logger.Logger, opts ...Option) textsign.PasswordGenerator {
	o := newOptions(opts)
	return &passwordGenerator{
		logger:   logger,
		rand:     o.rand,
		validate: validator.New(),
	}
}

// Generate returns a password with one character of every included class and the remainder
// sampled uniformly from the union of those classes, shuffled as a whole.
func (g *passwordGenerator) Generate(opts textsign.PasswordOptions) (string, error) {
	if err := g.validate.Struct(opts); err != nil {
		return "", fmt.Errorf("%w: got %d", textsign.ErrInvalidPasswordLength, opts.Length)
	}

	var classes []string
	if !opts.NoUpper {
		classes = append(classes, upperPool)
	}
	if !opts.NoLower {
		classes = append(classes, lowerPool)
	}
	if !opts.NoNumber {
		classes = append(classes, numberPool)
	}
	if !opts.NoSymbol {
		classes = append(classes, symbolPool)
	}
	if len(classes) == 0 {
		return "", fmt.Errorf("%w: every character class is excluded", textsign.ErrInvalidPasswordLength)
	}

	buf := make([]byte, 0, opts.Length)
	union := ""
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
		union += class
	}

	for len(buf) < opts.Length {
		c, err := g.pick(union)
		if err != nil {
			return "", err
		}
		buf = append(buf, c)
	}

	// Fisher-Yates
	for i := len(buf) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return "", err
		}
		buf[i], buf[j] = buf[j], buf[i]
	}

	g.logger.Debug(fmt.Sprintf("Generated password of length %d from %d character classes", opts.Length, len(classes)))
	return string(buf), nil
}

// GenerateKeyMaterial returns size bytes. KeyMaterialCharset yields the bytes of a password
// using every class; KeyMaterialFullRange yields uniformly random bytes.
func (g *passwordGenerator) GenerateKeyMaterial(size int, mode textsign.KeyMaterialMode) ([]byte, error) {
	switch mode {
	case textsign.KeyMaterialCharset:
		password, err := g.Generate(textsign.PasswordOptions{Length: size})
		if err != nil {
			return nil, err
		}
		return []byte(password), nil
	case textsign.KeyMaterialFullRange:
		if size <= 0 {
			return nil, fmt.Errorf("key material size must be positive, got %d", size)
		}
		buf := make([]byte, size)
		if _, err := io.ReadFull(g.rand, buf); err != nil {
			return nil, fmt.Errorf("failed to read random bytes: %w", err)
		}
		return buf, nil
	default:
		return nil, fmt.Errorf("unsupported key material mode %q", mode)
	}
}

func (g *passwordGenerator) pick(pool string) (byte, error) {
	i, err := g.intn(len(pool))
	if err != nil {
		return 0, err
	}
	return pool[i], nil
}

func (g *passwordGenerator) intn(n int) (int, error) {
	v, err := rand.Int(g.rand, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random index: %w", err)
	}
	return int(v.Int64()), nil
}
