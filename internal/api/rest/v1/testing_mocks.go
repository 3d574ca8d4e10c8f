//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
)

// MockSigningKeyUploadService is a mock implementation of SigningKeyUploadService
type MockSigningKeyUploadService struct {
	mock.Mock
}

func (m *MockSigningKeyUploadService) Upload(ctx context.Context, userID string, format textsign.Format, opts textsign.GenerateOptions) ([]*keys.SigningKeyMeta, error) {
	args := m.Called(ctx, userID, format, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.SigningKeyMeta), args.Error(1)
}

// MockSigningKeyMetadataService is a mock implementation of SigningKeyMetadataService
type MockSigningKeyMetadataService struct {
	mock.Mock
}

func (m *MockSigningKeyMetadataService) List(ctx context.Context, query *keys.SigningKeyQuery) ([]*keys.SigningKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.SigningKeyMeta), args.Error(1)
}

func (m *MockSigningKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.SigningKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.SigningKeyMeta), args.Error(1)
}

func (m *MockSigningKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockTextSigningService is a mock implementation of TextSigningService
type MockTextSigningService struct {
	mock.Mock
}

func (m *MockTextSigningService) SignWithKey(ctx context.Context, keyID string, content []byte) (string, error) {
	args := m.Called(ctx, keyID, content)
	return args.String(0), args.Error(1)
}

func (m *MockTextSigningService) VerifyWithKey(ctx context.Context, keyID string, content []byte, signature string) (bool, error) {
	args := m.Called(ctx, keyID, content, signature)
	return args.Bool(0), args.Error(1)
}
