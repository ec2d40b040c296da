package store

import (
	"context"

	"github.com/enerdev/turbine-parts/internal/models"
)

// MemoryStore holds the document in memory. It counts Save calls and
// can be primed with errors, so tests can assert the
// save-exactly-once-per-mutation contract.
type MemoryStore struct {
	Doc       *models.Document
	SaveCount int
	LoadErr   error
	SaveErr   error
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Doc: models.NewDocument()}
}

// Load returns the held document.
func (s *MemoryStore) Load(ctx context.Context) (*models.Document, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Doc == nil {
		s.Doc = models.NewDocument()
	}
	return s.Doc, nil
}

// Save records the document and increments the save counter.
func (s *MemoryStore) Save(ctx context.Context, doc *models.Document) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.Doc = doc
	s.SaveCount++
	return nil
}
