// Package ports defines the contracts between the application core and the
// outside world: repositories, the unit of work and the outbound services
// for files, mail, extraction and paperwork rendering.
package ports

import (
	"context"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice. A duplicate number fails with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice by id or fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByNumber retrieves an invoice by its commercial invoice number.
	GetByNumber(ctx context.Context, number string) (*invoice.Invoice, error)

	// GetMany retrieves the invoices in the order of ids. Any missing id fails
	// the whole call with errs.ErrObjectNotFound.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*invoice.Invoice, error)

	// ListBlocked returns all blocked invoices ordered by owner, then number.
	ListBlocked(ctx context.Context) ([]*invoice.Invoice, error)
}
