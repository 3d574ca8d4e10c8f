//go:build unit
// +build unit

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luffy2025/rcli/internal/domain/codec"
	"github.com/luffy2025/rcli/internal/domain/textsign"
	"github.com/luffy2025/rcli/internal/pkg/testutil"
)

func TestBase64Service(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	service, err := NewBase64Service(logger)
	require.NoError(t, err)
	ctx := context.Background()

	// 0xfb 0xff encodes to characters that differ between alphabets
	input := testutil.WriteTempFile(t, "input.bin", []byte("\xfb\xff?\n"))

	t.Run("Standard", func(t *testing.T) {
		encoded, err := service.Encode(ctx, input, codec.Base64Standard)
		require.NoError(t, err)
		assert.Equal(t, "+/8/", encoded)

		path := testutil.WriteTempFile(t, "encoded.txt", []byte(encoded+"\n"))
		decoded, err := service.Decode(ctx, path, codec.Base64Standard)
		require.NoError(t, err)
		assert.Equal(t, []byte("\xfb\xff?"), decoded)
	})

	t.Run("URLSafe", func(t *testing.T) {
		encoded, err := service.Encode(ctx, input, codec.Base64URLSafe)
		require.NoError(t, err)
		assert.Equal(t, "-_8_", encoded)

		path := testutil.WriteTempFile(t, "encoded.txt", []byte(encoded))
		decoded, err := service.Decode(ctx, path, codec.Base64URLSafe)
		require.NoError(t, err)
		assert.Equal(t, []byte("\xfb\xff?"), decoded)
	})

	t.Run("Padding", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "short.txt", []byte("ab"))

		encoded, err := service.Encode(ctx, path, codec.Base64Standard)
		require.NoError(t, err)
		assert.Equal(t, "YWI=", encoded)

		encoded, err = service.Encode(ctx, path, codec.Base64URLSafe)
		require.NoError(t, err)
		assert.Equal(t, "YWI", encoded)
	})

	t.Run("InvalidInput", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "bad.txt", []byte("-_8_"))
		_, err := service.Decode(ctx, path, codec.Base64Standard)
		assert.ErrorIs(t, err, textsign.ErrBase64Decode)
	})

	t.Run("UnsupportedFormat", func(t *testing.T) {
		_, err := service.Encode(ctx, input, codec.Base64Format("hex"))
		assert.ErrorIs(t, err, codec.ErrUnsupportedBase64Format)
	})
}
