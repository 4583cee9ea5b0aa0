package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDocumentNotFound signals that no document has been persisted yet.
var ErrDocumentNotFound = errors.New("document not found")

// FileDocument persists a single JSON document at a fixed path. Writes go
// through a temp file and rename so a failed save never truncates the
// previous document.
type FileDocument struct {
	path string
}

// NewFileDocument ensures the parent directory exists and returns a handle.
func NewFileDocument(path string) (*FileDocument, error) {
	if path == "" {
		path = "./data/subplan.json"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create document directory: %w", err)
	}
	return &FileDocument{path: path}, nil
}

// Load reads the raw document bytes.
func (d *FileDocument) Load() ([]byte, error) {
	raw, err := os.ReadFile(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return raw, nil
}

// Save replaces the document atomically.
func (d *FileDocument) Save(raw []byte) error {
	tmp := d.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if err := os.Rename(tmp, d.path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// Path exposes the underlying location (useful for debugging).
func (d *FileDocument) Path() string {
	return d.path
}
