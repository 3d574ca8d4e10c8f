//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/config"
	"github.com/luffy2025/rcli/internal/pkg/testutil"
)

const testPostgresDSN = "user=postgres password=postgres host=localhost port=5432 sslmode=disable"

// TestContext holds the test database and repository
type TestContext struct {
	DB             *gorm.DB
	SigningKeyRepo keys.SigningKeyRepository
}

// SetupTestDB opens a migrated test database of dbType and closes it when the test ends
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanup := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  sqliteMemoryDSN,
		}
	case config.PostgresDbType:
		dbName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    testPostgresDSN,
			DBName: dbName,
		}
		cleanup = func() {
			_ = DropDatabase(testPostgresDSN+" dbname=postgres", dbName)
		}
	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	logger := testutil.SetupTestLogger(t)

	db, err := NewDBConnection(settings, logger)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanup()
	})

	repo, err := NewGormSigningKeyRepository(db, logger)
	require.NoError(t, err, "Failed to create signing key repository")

	return &TestContext{
		DB:             db,
		SigningKeyRepo: repo,
	}
}

// CreateTestKey creates signing key metadata for userID
func CreateTestKey(t *testing.T, userID string, format textsign.Format, keyType string) *keys.SigningKeyMeta {
	t.Helper()

	return &keys.SigningKeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Format:          format.String(),
		Type:            keyType,
		DateTimeCreated: time.Now().UTC(),
		UserID:          userID,
	}
}
