package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	want := testDoc{Name: "usage", Count: 42}
	if err := WriteJSON(path, want); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var got testDoc
	if err := ReadJSON(path, &got); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestWriteJSONLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")

	if err := WriteJSON(path, testDoc{Name: "a"}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if err := WriteJSON(path, testDoc{Name: "b"}); err != nil {
		t.Fatalf("WriteJSON overwrite failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("Temp file left behind: %s", e.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 file in dir, got %d", len(entries))
	}
}

func TestWriteJSONOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	if err := WriteJSON(path, testDoc{Name: "old", Count: 1}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	if err := WriteJSON(path, testDoc{Name: "new", Count: 2}); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var got testDoc
	if err := ReadJSON(path, &got); err != nil {
		t.Fatalf("ReadJSON failed: %v", err)
	}
	if got.Name != "new" || got.Count != 2 {
		t.Errorf("Expected overwritten doc, got %+v", got)
	}
}

func TestReadJSONMissingFile(t *testing.T) {
	err := ReadJSON(filepath.Join(t.TempDir(), "missing.json"), &testDoc{})
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected PersistenceError, got %T", err)
	}
	if perr.Op != "read" {
		t.Errorf("Expected op 'read', got %q", perr.Op)
	}
}

func TestReadJSONCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	err := ReadJSON(path, &testDoc{})
	if err == nil {
		t.Fatal("Expected error for corrupt file")
	}

	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected PersistenceError, got %T", err)
	}
	if perr.Op != "decode" {
		t.Errorf("Expected op 'decode', got %q", perr.Op)
	}
}

func TestWriteJSONMissingDirectory(t *testing.T) {
	err := WriteJSON(filepath.Join(t.TempDir(), "no", "such", "dir", "x.json"), testDoc{})
	if err == nil {
		t.Fatal("Expected error for missing directory")
	}
	var perr *PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected PersistenceError, got %T", err)
	}
	if perr.Op != "write" {
		t.Errorf("Expected op 'write', got %q", perr.Op)
	}
}
