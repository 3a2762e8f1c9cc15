package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// CreateStateDir creates a temporary directory seeded with a
// config.json, the layout the application keeps its state files in
func CreateStateDir(t *testing.T, configJSON string) string {
	t.Helper()

	dir := t.TempDir()
	WriteFile(t, filepath.Join(dir, "config.json"), []byte(configJSON))
	return dir
}

// WriteFile creates a test file with content
func WriteFile(t *testing.T, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}
