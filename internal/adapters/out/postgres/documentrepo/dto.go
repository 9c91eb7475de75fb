// Package documentrepo persists uploaded documents and their staged
// extraction data.
package documentrepo

import (
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DocumentDTO is the documents table row. The extraction and the reviewer
// corrections are kept as JSONB.
type DocumentDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Type          int                 `gorm:"type:smallint"`
	FileKey       string              `gorm:"size:512"`
	Filename      string              `gorm:"size:255"`
	ContentType   string              `gorm:"size:128"`
	Reference     string              `gorm:"size:64;uniqueIndex"`
	Status        int                 `gorm:"type:smallint;index"`
	Extraction    document.Extraction `gorm:"type:jsonb;serializer:json"`
	Corrections   map[string]string   `gorm:"type:jsonb;serializer:json"`
	FailureReason string
	Reviewer      string `gorm:"size:128"`
	ReviewNote    string
	InvoiceID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (DocumentDTO) TableName() string {
	return "documents"
}

func fromDomain(aggregate *document.Document) DocumentDTO {
	s := aggregate.Snapshot()

	var invoiceID *uuid.UUID
	if s.InvoiceID != nil {
		raw := s.InvoiceID.Bytes()
		invoiceID = &raw
	}

	corrections := s.Corrections
	if corrections == nil {
		corrections = map[string]string{}
	}

	return DocumentDTO{
		ID:            s.ID.Bytes(),
		Type:          int(s.Type),
		FileKey:       s.FileKey,
		Filename:      s.Filename,
		ContentType:   s.ContentType,
		Reference:     s.Reference,
		Status:        int(s.Status),
		Extraction:    s.Extraction,
		Corrections:   corrections,
		FailureReason: s.FailureReason,
		Reviewer:      s.Reviewer,
		ReviewNote:    s.ReviewNote,
		InvoiceID:     invoiceID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toDomain(dto DocumentDTO) (*document.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var invoiceID *kernel.UUID
	if dto.InvoiceID != nil {
		invID, idErr := kernel.UUIDFromBytes(dto.InvoiceID[:])
		if idErr != nil {
			return nil, idErr
		}
		invoiceID = &invID
	}

	return document.Restore(document.Snapshot{
		ID:            id,
		Type:          document.Type(dto.Type),
		FileKey:       dto.FileKey,
		Filename:      dto.Filename,
		ContentType:   dto.ContentType,
		Reference:     dto.Reference,
		Status:        document.Status(dto.Status),
		Extraction:    dto.Extraction,
		Corrections:   dto.Corrections,
		FailureReason: dto.FailureReason,
		Reviewer:      dto.Reviewer,
		ReviewNote:    dto.ReviewNote,
		InvoiceID:     invoiceID,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}
