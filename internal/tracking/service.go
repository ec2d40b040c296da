package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/enerdev/turbine-parts/internal/models"
	"github.com/enerdev/turbine-parts/internal/store"
)

// dateLayout is the ISO date format used for installation, removal and
// manufacture dates.
const dateLayout = "2006-01-02"

// Service is the part-lifecycle tracking core. It owns the in-memory
// document and persists it through the store after every successful
// mutation. The service assumes single-writer access; callers that run
// concurrently must serialize their calls.
type Service struct {
	store store.Store
	doc   *models.Document

	// now is swappable so tests can pin default dates.
	now func() time.Time
}

// NewService loads the document from the store and returns a service
// operating on it.
func NewService(ctx context.Context, st store.Store) (*Service, error) {
	doc, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking data: %w", err)
	}
	return &Service{store: st, doc: doc, now: time.Now}, nil
}

// Document exposes the in-memory document for read-side callers.
func (s *Service) Document() *models.Document {
	return s.doc
}

// persist issues the single save call a successful mutation requires.
// Errors propagate unchanged; the core never retries I/O.
func (s *Service) persist(ctx context.Context) error {
	return s.store.Save(ctx, s.doc)
}

func (s *Service) today() string {
	return s.now().Format(dateLayout)
}
