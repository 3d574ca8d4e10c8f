//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKey(t *testing.T) {
	t.Run("ExactSize", func(t *testing.T) {
		key := bytes.Repeat([]byte{0x42}, textsign.KeySize)
		path := testutil.WriteTempFile(t, "exact.key", key)

		loaded, err := LoadKey(path, textsign.KeySize)
		require.NoError(t, err)
		assert.Equal(t, key, loaded)
	})

	t.Run("TrailingBytesIgnored", func(t *testing.T) {
		content := append(bytes.Repeat([]byte{0x01}, textsign.KeySize), []byte("\ntrailing")...)
		path := testutil.WriteTempFile(t, "long.key", content)

		loaded, err := LoadKey(path, textsign.KeySize)
		require.NoError(t, err)
		assert.Equal(t, content[:textsign.KeySize], loaded)
	})

	t.Run("TooShort", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "short.key", make([]byte, 31))

		_, err := LoadKey(path, textsign.KeySize)
		assert.ErrorIs(t, err, textsign.ErrKeyTooShort)
	})

	t.Run("Empty", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "empty.key", nil)

		_, err := LoadKey(path, textsign.KeySize)
		assert.ErrorIs(t, err, textsign.ErrKeyTooShort)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadKey(filepath.Join(t.TempDir(), "missing.key"), textsign.KeySize)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoaders_ShortKey(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	path := testutil.WriteTempFile(t, "short.key", make([]byte, 16))

	_, err := LoadBlake3Processor(path, logger)
	assert.ErrorIs(t, err, textsign.ErrKeyTooShort)

	_, err = LoadEd25519Signer(path, logger)
	assert.ErrorIs(t, err, textsign.ErrKeyTooShort)

	_, err = LoadEd25519Verifier(path, logger)
	assert.ErrorIs(t, err, textsign.ErrKeyTooShort)

	_, err = LoadChaCha20Poly1305Processor(path, logger)
	assert.ErrorIs(t, err, textsign.ErrKeyTooShort)
}

func TestLoaders_RoundTrip(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	dir := t.TempDir()
	generator := NewKeyGenerator(logger)
	message := "loaded from disk"

	t.Run("Blake3", func(t *testing.T) {
		keys, err := generator.GenerateBlake3Key(textsign.KeyMaterialFullRange)
		require.NoError(t, err)
		paths := testutil.WriteKeyFiles(t, dir, textsign.FormatBlake3.KeyFileNames(), keys)

		processor, err := LoadBlake3Processor(paths[0], logger)
		require.NoError(t, err)

		sig, err := processor.Sign(strings.NewReader(message))
		require.NoError(t, err)
		valid, err := processor.Verify(strings.NewReader(message), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("Ed25519", func(t *testing.T) {
		keys, err := generator.GenerateEd25519Keys()
		require.NoError(t, err)
		paths := testutil.WriteKeyFiles(t, dir, textsign.FormatEd25519.KeyFileNames(), keys)

		signer, err := LoadEd25519Signer(paths[0], logger)
		require.NoError(t, err)
		verifier, err := LoadEd25519Verifier(paths[1], logger)
		require.NoError(t, err)

		sig, err := signer.Sign(strings.NewReader(message))
		require.NoError(t, err)
		valid, err := verifier.Verify(strings.NewReader(message), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})

	t.Run("ChaCha20Poly1305", func(t *testing.T) {
		keys, err := generator.GenerateChaCha20Poly1305Key()
		require.NoError(t, err)
		paths := testutil.WriteKeyFiles(t, dir, textsign.FormatChaCha20Poly1305.KeyFileNames(), keys)

		processor, err := LoadChaCha20Poly1305Processor(paths[0], logger)
		require.NoError(t, err)

		sig, err := processor.Sign(strings.NewReader(message))
		require.NoError(t, err)
		valid, err := processor.Verify(strings.NewReader(message), sig)
		require.NoError(t, err)
		assert.True(t, valid)
	})
}
