package queries

import (
	"context"
	"fmt"

	"doctrack/internal/core/ports"
)

type GetDocumentQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	fileStore  ports.FileStore
}

func NewGetDocumentQueryHandler(uowFactory ports.UnitOfWorkFactory, fileStore ports.FileStore) GetDocumentQueryHandler {
	return GetDocumentQueryHandler{uowFactory: uowFactory, fileStore: fileStore}
}

func (h GetDocumentQueryHandler) Handle(ctx context.Context, query GetDocumentQuery) (*GetDocumentQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	doc, err := h.uowFactory.Create().DocumentRepository().Get(ctx, query.DocumentID())
	if err != nil {
		return nil, err
	}

	url, err := h.fileStore.PresignGet(ctx, doc.FileKey())
	if err != nil {
		return nil, fmt.Errorf("presign %s: %w", doc.FileKey(), err)
	}

	return &GetDocumentQueryResponse{
		ID:            doc.ID(),
		Type:          doc.Type(),
		Filename:      doc.Filename(),
		ContentType:   doc.ContentType(),
		Reference:     doc.Reference(),
		Status:        doc.Status(),
		Fields:        doc.Fields(),
		LineItems:     doc.Extraction().LineItems,
		FailureReason: doc.FailureReason(),
		Reviewer:      doc.Reviewer(),
		ReviewNote:    doc.ReviewNote(),
		InvoiceID:     doc.InvoiceID(),
		DownloadURL:   url,
		CreatedAt:     doc.CreatedAt(),
		UpdatedAt:     doc.UpdatedAt(),
	}, nil
}
