//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/config"
)

func TestSigningKeyServices_Lifecycle(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	userID := uuid.NewString()
	content := []byte("stored key round trip")

	for _, format := range textsign.Formats() {
		t.Run(format.String(), func(t *testing.T) {
			metas, err := services.SigningKeyUploadService.Upload(ctx, userID, format, textsign.GenerateOptions{KeyMode: textsign.KeyMaterialFullRange})
			require.NoError(t, err)
			require.Len(t, metas, len(format.KeyTypes()))

			for i, meta := range metas {
				assert.Equal(t, format.KeyTypes()[i], meta.Type)
				path := filepath.Join(services.KeyStoreDir, meta.KeyPairID, meta.ID+"-"+meta.Type+".key")
				data, err := os.ReadFile(path)
				require.NoError(t, err)
				assert.Len(t, data, textsign.KeySize)
			}

			signature, err := services.TextSigningService.SignWithKey(ctx, metas[0].ID, content)
			require.NoError(t, err)

			last := metas[len(metas)-1]
			valid, err := services.TextSigningService.VerifyWithKey(ctx, last.ID, content, signature)
			require.NoError(t, err)
			assert.True(t, valid)

			for _, meta := range metas {
				require.NoError(t, services.SigningKeyMetadataService.DeleteByID(ctx, meta.ID))
				_, err := services.SigningKeyMetadataService.GetByID(ctx, meta.ID)
				assert.ErrorIs(t, err, keys.ErrKeyNotFound)
			}
		})
	}
}

func TestSigningKeyServices_List(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()
	userID := uuid.NewString()

	_, err := services.SigningKeyUploadService.Upload(ctx, userID, textsign.FormatEd25519, textsign.GenerateOptions{})
	require.NoError(t, err)
	_, err = services.SigningKeyUploadService.Upload(ctx, userID, textsign.FormatBlake3, textsign.GenerateOptions{KeyMode: textsign.KeyMaterialCharset})
	require.NoError(t, err)

	all, err := services.SigningKeyMetadataService.List(ctx, &keys.SigningKeyQuery{UserID: userID})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	public, err := services.SigningKeyMetadataService.List(ctx, &keys.SigningKeyQuery{Type: textsign.KeyTypePublic})
	require.NoError(t, err)
	assert.Len(t, public, 1)
}
