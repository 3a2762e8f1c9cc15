package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// PersistenceError describes a failed read or write of a state file
type PersistenceError struct {
	Path string
	Op   string // "read", "decode", "encode" or "write"
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ReadJSON reads the whole file at path and unmarshals it into v.
// A missing file surfaces as os.ErrNotExist through errors.Is.
func ReadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &PersistenceError{Path: path, Op: "read", Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &PersistenceError{Path: path, Op: "decode", Err: err}
	}
	return nil
}

// WriteJSON marshals v and atomically replaces the file at path.
// The document goes to a temp file in the same directory first and is
// renamed over the target, so the target is never left half written.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return &PersistenceError{Path: path, Op: "encode", Err: err}
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return &PersistenceError{Path: path, Op: "write", Err: err}
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return &PersistenceError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Path: path, Op: "write", Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &PersistenceError{Path: path, Op: "write", Err: err}
	}
	return nil
}
