//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
)

type mockVaultConnector struct {
	mock.Mock
}

func (m *mockVaultConnector) Upload(ctx context.Context, data []byte, userID, keyPairID, keyType string, format textsign.Format) (*keys.SigningKeyMeta, error) {
	args := m.Called(ctx, data, userID, keyPairID, keyType, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.SigningKeyMeta), args.Error(1)
}

func (m *mockVaultConnector) Download(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error) {
	args := m.Called(ctx, keyID, keyPairID, keyType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockVaultConnector) Delete(ctx context.Context, keyID, keyPairID, keyType string) error {
	args := m.Called(ctx, keyID, keyPairID, keyType)
	return args.Error(0)
}

type mockSigningKeyRepository struct {
	mock.Mock
}

func (m *mockSigningKeyRepository) Create(ctx context.Context, key *keys.SigningKeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockSigningKeyRepository) List(ctx context.Context, query *keys.SigningKeyQuery) ([]*keys.SigningKeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.SigningKeyMeta), args.Error(1)
}

func (m *mockSigningKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.SigningKeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.SigningKeyMeta), args.Error(1)
}

func (m *mockSigningKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
