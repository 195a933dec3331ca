package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempDir wraps t.TempDir for consistency and future shared setup.
func TempDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// WriteFixture writes content to name inside a fresh temp dir and returns
// the full path.
func WriteFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(TempDir(t), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
