package store

import (
	"context"
	"errors"

	"github.com/enerdev/turbine-parts/internal/models"
)

var (
	// ErrCorruptStore indicates the persisted document could not be
	// parsed. The caller decides between aborting and reinitializing.
	ErrCorruptStore = errors.New("store data is corrupt")
)

// Store persists the tracking document. Load returns the full document;
// an empty or missing backing store yields a document with five empty
// collections, never an error. Save replaces the persisted document
// with the given one.
type Store interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
}
