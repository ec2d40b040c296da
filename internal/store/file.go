package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/enerdev/turbine-parts/internal/models"
)

// FileStore persists the document as a pretty-printed JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file store backed by the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. A missing file initializes an
// empty document and creates the file so subsequent loads see it.
func (s *FileStore) Load(ctx context.Context) (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := models.NewDocument()
			if err := s.Save(ctx, doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc := models.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	return doc, nil
}

// Save writes the document to a temp file in the same directory and
// renames it into place, so a crash mid-write never truncates the data
// file.
func (s *FileStore) Save(ctx context.Context, doc *models.Document) error {
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".tracker-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
