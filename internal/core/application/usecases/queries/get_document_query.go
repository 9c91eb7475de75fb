package queries

import (
	"errors"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrGetDocumentQueryIsNotConstructed = errors.New("GetDocumentQuery must be created via NewGetDocumentQuery constructor")

type GetDocumentQuery struct {
	documentID kernel.UUID
	guard      guard.ConstructorGuard
}

func NewGetDocumentQuery(documentID kernel.UUID) (GetDocumentQuery, error) {
	if err := documentID.Validate(); err != nil {
		return GetDocumentQuery{}, err
	}
	return GetDocumentQuery{documentID: documentID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDocumentQuery) DocumentID() kernel.UUID { return q.documentID }

func (q GetDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentQueryIsNotConstructed)
}

// GetDocumentQueryResponse carries the staged extraction with reviewer
// corrections applied and a short-lived download link to the original file.
type GetDocumentQueryResponse struct {
	ID            kernel.UUID
	Type          document.Type
	Filename      string
	ContentType   string
	Reference     string
	Status        document.Status
	Fields        map[string]string
	LineItems     []document.LineItem
	FailureReason string
	Reviewer      string
	ReviewNote    string
	InvoiceID     *kernel.UUID
	DownloadURL   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
