package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateTestFile create a test files
func CreateTestFile(fileName string, content []byte) error {
	err := os.WriteFile(fileName, content, 0600)
	if err != nil {
		return fmt.Errorf("failed to create test file: %w", err)
	}
	return nil
}

// WriteTempFile writes content to name inside a per-test temporary directory and returns the path.
func WriteTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, CreateTestFile(path, content))
	return path
}

// WriteKeyFiles writes each key buffer to dir under the matching name and returns the paths.
func WriteKeyFiles(t *testing.T, dir string, names []string, keys [][]byte) []string {
	t.Helper()
	require.Len(t, keys, len(names))

	paths := make([]string, 0, len(names))
	for i, name := range names {
		path := filepath.Join(dir, name)
		require.NoError(t, CreateTestFile(path, keys[i]))
		paths = append(paths, path)
	}
	return paths
}
