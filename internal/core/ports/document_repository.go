package ports

import (
	"context"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for ingested documents.
type DocumentRepository interface {
	Add(ctx context.Context, aggregate *document.Document) error
	Update(ctx context.Context, aggregate *document.Document) error
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetByReference finds the document an extraction callback refers to.
	GetByReference(ctx context.Context, reference string) (*document.Document, error)

	// ListAwaitingExtractionBefore returns documents still waiting for the
	// extraction engine that were uploaded before the cutoff.
	ListAwaitingExtractionBefore(ctx context.Context, cutoff time.Time) ([]*document.Document, error)
}
