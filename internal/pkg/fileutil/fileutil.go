// Package fileutil resolves CLI input references to readers.
package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// StdinRef is the input reference that selects standard input.
const StdinRef = "-"

// stdin is swapped in tests.
var stdin io.Reader = os.Stdin

// OpenInput returns a reader for ref: standard input for "-", otherwise the named file.
// Closing the returned reader never closes standard input.
func OpenInput(ref string) (io.ReadCloser, error) {
	if ref == StdinRef {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to open input %s: %w", ref, err)
	}
	return f, nil
}

// ReadTrimmed reads ref fully and strips surrounding whitespace.
func ReadTrimmed(ref string) (string, error) {
	r, err := OpenInput(ref)
	if err != nil {
		return "", err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input %s: %w", ref, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// WriteFiles writes each buffer to dir under the matching name with owner-only permissions.
func WriteFiles(dir string, names []string, data [][]byte) ([]string, error) {
	if len(names) != len(data) {
		return nil, fmt.Errorf("got %d buffers for %d file names", len(data), len(names))
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(names))
	for i, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data[i], 0600); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
