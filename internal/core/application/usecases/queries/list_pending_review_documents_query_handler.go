package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPendingReviewDocumentsQueryHandler struct {
	db *gorm.DB
}

func NewListPendingReviewDocumentsQueryHandler(db *gorm.DB) ListPendingReviewDocumentsQueryHandler {
	return ListPendingReviewDocumentsQueryHandler{db: db}
}

// Handle returns the queue oldest first.
func (h ListPendingReviewDocumentsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingReviewDocumentsQuery,
) ([]ListPendingReviewDocumentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			filename,
			reference,
			extraction,
			created_at
		FROM documents
		WHERE status = ?
		ORDER BY created_at
	`, int(document.PendingReview)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	documents := make([]ListPendingReviewDocumentsQueryResponse, 0)
	for rows.Next() {
		var (
			id         uuid.UUID
			docType    int
			filename   string
			reference  string
			extraction []byte
			createdAt  time.Time
		)
		if err = rows.Scan(&id, &docType, &filename, &reference, &extraction, &createdAt); err != nil {
			return nil, err
		}

		documentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		var staged document.Extraction
		if len(extraction) > 0 {
			if err = json.Unmarshal(extraction, &staged); err != nil {
				return nil, fmt.Errorf("decode extraction of document %s: %w", documentID, err)
			}
		}
		fields := staged.Fields
		if fields == nil {
			fields = map[string]string{}
		}

		documents = append(documents, ListPendingReviewDocumentsQueryResponse{
			ID:        documentID,
			Type:      document.Type(docType),
			Filename:  filename,
			Reference: reference,
			Fields:    fields,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return documents, nil
}
