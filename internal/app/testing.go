//go:build integration
// +build integration

package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/infrastructure/connector"
	"github.com/luffy2025/rcli/internal/infrastructure/cryptography"
	"github.com/luffy2025/rcli/internal/infrastructure/persistence"
	"github.com/luffy2025/rcli/internal/pkg/config"
	"github.com/luffy2025/rcli/internal/pkg/testutil"
)

// TestServices holds all application services and dependencies for integration tests
type TestServices struct {
	TextService               textsign.TextService
	SigningKeyUploadService   keys.SigningKeyUploadService
	SigningKeyMetadataService keys.SigningKeyMetadataService
	TextSigningService        keys.TextSigningService

	DBContext   *persistence.TestContext
	KeyStoreDir string
}

// SetupTestServices wires the services on a test database and a temporary key store
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	keyStoreDir := filepath.Join(t.TempDir(), "keys")
	vaultConnector, err := connector.NewLocalVaultConnector(&config.KeyStoreSettings{Directory: keyStoreDir}, logger)
	require.NoError(t, err, "Failed to create vault connector")

	textService, err := NewTextService(cryptography.NewKeyGenerator(logger), logger)
	require.NoError(t, err, "Failed to create TextService")

	uploadService, err := NewSigningKeyUploadService(vaultConnector, dbContext.SigningKeyRepo, textService, logger)
	require.NoError(t, err, "Failed to create SigningKeyUploadService")

	metadataService, err := NewSigningKeyMetadataService(vaultConnector, dbContext.SigningKeyRepo, logger)
	require.NoError(t, err, "Failed to create SigningKeyMetadataService")

	textSigningService, err := NewTextSigningService(vaultConnector, dbContext.SigningKeyRepo, logger)
	require.NoError(t, err, "Failed to create TextSigningService")

	return &TestServices{
		TextService:               textService,
		SigningKeyUploadService:   uploadService,
		SigningKeyMetadataService: metadataService,
		TextSigningService:        textSigningService,
		DBContext:                 dbContext,
		KeyStoreDir:               keyStoreDir,
	}
}
