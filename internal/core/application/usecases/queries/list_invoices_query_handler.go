package queries

import (
	"context"
	"strings"
	"time"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListInvoicesQueryHandler struct {
	db *gorm.DB
}

func NewListInvoicesQueryHandler(db *gorm.DB) ListInvoicesQueryHandler {
	return ListInvoicesQueryHandler{db: db}
}

// Handle returns the matching invoices ordered by number.
func (h ListInvoicesQueryHandler) Handle(ctx context.Context, query ListInvoicesQuery) ([]ListInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if query.stage != nil {
		where = append(where, "stage = ?")
		args = append(args, int(*query.stage))
	}
	if query.owner != nil {
		where = append(where, "owner = ?")
		args = append(args, int(*query.owner))
	}
	if query.blocked != nil {
		where = append(where, "blocked = ?")
		args = append(args, *query.blocked)
	}

	sql := `SELECT id, number, customer_name, destination, stage, owner, blocked, updated_at FROM invoices`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY number`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]ListInvoicesQueryResponse, 0)
	for rows.Next() {
		var (
			id           uuid.UUID
			number       string
			customer     string
			destination  string
			stage, owner int
			blocked      bool
			updatedAt    time.Time
		)
		if err = rows.Scan(&id, &number, &customer, &destination, &stage, &owner, &blocked, &updatedAt); err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		invoices = append(invoices, ListInvoicesQueryResponse{
			ID:           invoiceID,
			Number:       number,
			CustomerName: customer,
			Destination:  destination,
			Stage:        invoice.Stage(stage),
			Owner:        invoice.Owner(owner),
			Blocked:      blocked,
			UpdatedAt:    updatedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
