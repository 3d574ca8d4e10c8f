package app

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/luffy2025/rcli/internal/domain/codec"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/fileutil"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

// base64Service implements the Base64Service interface
type base64Service struct {
	logger logger.Logger
}

// NewBase64Service creates a new base64Service instance
func NewBase64Service(logger logger.Logger) (codec.Base64Service, error) {
	return &base64Service{logger: logger}, nil
}

// Encode reads and trims input, then encodes it
func (s *base64Service) Encode(ctx context.Context, input string, format codec.Base64Format) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	enc, err := encodingFor(format)
	if err != nil {
		return "", err
	}

	data, err := fileutil.ReadTrimmed(input)
	if err != nil {
		return "", err
	}

	s.logger.Debug(fmt.Sprintf("Encoding %d bytes as %s base64", len(data), format))
	return enc.EncodeToString([]byte(data)), nil
}

// Decode reads and trims input, then decodes it
func (s *base64Service) Decode(ctx context.Context, input string, format codec.Base64Format) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	enc, err := encodingFor(format)
	if err != nil {
		return nil, err
	}

	data, err := fileutil.ReadTrimmed(input)
	if err != nil {
		return nil, err
	}

	decoded, err := enc.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", textsign.ErrBase64Decode, err)
	}

	s.logger.Debug(fmt.Sprintf("Decoded %d bytes of %s base64", len(decoded), format))
	return decoded, nil
}

func encodingFor(format codec.Base64Format) (*base64.Encoding, error) {
	switch format {
	case codec.Base64Standard:
		return base64.StdEncoding, nil
	case codec.Base64URLSafe:
		return base64.RawURLEncoding, nil
	default:
		return nil, fmt.Errorf("%w: %q", codec.ErrUnsupportedBase64Format, format)
	}
}
