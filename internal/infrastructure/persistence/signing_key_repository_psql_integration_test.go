//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/config"
)

func TestSigningKeyPostgresRepository_Lifecycle(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	userID := uuid.NewString()
	private := CreateTestKey(t, userID, textsign.FormatEd25519, textsign.KeyTypePrivate)
	public := CreateTestKey(t, userID, textsign.FormatEd25519, textsign.KeyTypePublic)
	public.KeyPairID = private.KeyPairID

	require.NoError(t, ctx.SigningKeyRepo.Create(context.Background(), private))
	require.NoError(t, ctx.SigningKeyRepo.Create(context.Background(), public))

	fetched, err := ctx.SigningKeyRepo.GetByID(context.Background(), public.ID)
	require.NoError(t, err)
	assert.Equal(t, private.KeyPairID, fetched.KeyPairID)

	listed, err := ctx.SigningKeyRepo.List(context.Background(), &keys.SigningKeyQuery{UserID: userID, Type: textsign.KeyTypePublic})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, public.ID, listed[0].ID)

	require.NoError(t, ctx.SigningKeyRepo.DeleteByID(context.Background(), private.ID))
	_, err = ctx.SigningKeyRepo.GetByID(context.Background(), private.ID)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}
