// Package storage provides Storage implementations for preferences documents.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/CreativeUnicorns/prefsxml"
)

// defaultFileMode is used only when Save creates the file; an existing file keeps its mode.
const defaultFileMode = 0o644

// FileStorage implements the Storage interface over a single XML file on disk.
// It never touches any other path.
type FileStorage struct {
	path string
}

// NewFileStorage returns a FileStorage for the file at path. The file need not exist.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the file this storage reads and writes.
func (s *FileStorage) Path() string {
	return s.path
}

// Load reads and parses the file.
// It returns prefsxml.ErrNotFound if the file does not exist and an error wrapping
// prefsxml.ErrMalformed if its content is not a <map> document.
func (s *FileStorage) Load(ctx context.Context) (*prefsxml.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, prefsxml.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	doc, err := prefsxml.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return doc, nil
}

// Save serializes doc and overwrites the file with it.
// Serialization happens before the file is opened, so a failure there leaves the file intact.
func (s *FileStorage) Save(ctx context.Context, doc *prefsxml.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := doc.Bytes()
	if err != nil {
		return fmt.Errorf("failed to serialize preferences: %w", err)
	}

	if err := os.WriteFile(s.path, data, defaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", prefsxml.ErrStorageUnavailable, err)
	}
	return nil
}

// Close is a no-op; the file is opened and closed within each Load and Save.
func (s *FileStorage) Close() error {
	return nil
}
