package document

import (
	"maps"
	"time"

	"doctrack/internal/core/domain/model/kernel"
)

// Snapshot is the persisted form of a Document.
type Snapshot struct {
	ID            kernel.UUID
	Type          Type
	FileKey       string
	Filename      string
	ContentType   string
	Reference     string
	Status        Status
	Extraction    Extraction
	Corrections   map[string]string
	FailureReason string
	Reviewer      string
	ReviewNote    string
	InvoiceID     *kernel.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Snapshot copies the document state for persistence.
func (d *Document) Snapshot() Snapshot {
	return Snapshot{
		ID:            d.id,
		Type:          d.docType,
		FileKey:       d.fileKey,
		Filename:      d.filename,
		ContentType:   d.contentType,
		Reference:     d.reference,
		Status:        d.status,
		Extraction:    d.extraction,
		Corrections:   maps.Clone(d.corrections),
		FailureReason: d.failureReason,
		Reviewer:      d.reviewer,
		ReviewNote:    d.reviewNote,
		InvoiceID:     d.invoiceID,
		CreatedAt:     d.createdAt,
		UpdatedAt:     d.updatedAt,
	}
}

// Restore rebuilds a document loaded from storage, re-checking the
// invariants NewDocument enforces plus status consistency.
func Restore(s Snapshot) (*Document, error) {
	d, err := NewDocument(s.ID, UnknownType, s.FileKey, s.Filename, s.ContentType, s.Reference, s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err = s.Status.Validate(); err != nil {
		return nil, err
	}
	if s.Type != UnknownType {
		if err = s.Type.Validate(); err != nil {
			return nil, err
		}
	}

	d.docType = s.Type
	d.status = s.Status
	d.extraction = s.Extraction
	d.corrections = maps.Clone(s.Corrections)
	d.failureReason = s.FailureReason
	d.reviewer = s.Reviewer
	d.reviewNote = s.ReviewNote
	d.invoiceID = s.InvoiceID
	d.updatedAt = s.UpdatedAt
	return d, nil
}
