package queries

import (
	"errors"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrListPendingReviewDocumentsQueryIsNotConstructed = errors.New(
	"ListPendingReviewDocumentsQuery must be created via NewListPendingReviewDocumentsQuery constructor",
)

// ListPendingReviewDocumentsQuery returns the review queue: documents whose
// extraction arrived and that nobody acknowledged or rejected yet.
type ListPendingReviewDocumentsQuery struct {
	guard guard.ConstructorGuard
}

func NewListPendingReviewDocumentsQuery() ListPendingReviewDocumentsQuery {
	return ListPendingReviewDocumentsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPendingReviewDocumentsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingReviewDocumentsQueryIsNotConstructed)
}

type ListPendingReviewDocumentsQueryResponse struct {
	ID        kernel.UUID
	Type      document.Type
	Filename  string
	Reference string
	Fields    map[string]string
	CreatedAt time.Time
}
