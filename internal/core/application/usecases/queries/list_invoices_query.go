package queries

import (
	"errors"
	"time"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrListInvoicesQueryIsNotConstructed = errors.New("ListInvoicesQuery must be created via NewListInvoicesQuery constructor")

// ListInvoicesQuery lists invoices, optionally narrowed to one stage, one
// owner or the blocked ones. Filters combine with AND.
//
// Example:
//
//	owner := invoice.TransportPlanner
//	blocked := true
//	query, _ := NewListInvoicesQuery(nil, &owner, &blocked)
type ListInvoicesQuery struct {
	stage   *invoice.Stage
	owner   *invoice.Owner
	blocked *bool
	guard   guard.ConstructorGuard
}

func NewListInvoicesQuery(stage *invoice.Stage, owner *invoice.Owner, blocked *bool) (ListInvoicesQuery, error) {
	if stage != nil {
		if err := stage.Validate(); err != nil {
			return ListInvoicesQuery{}, err
		}
	}
	if owner != nil {
		if err := owner.Validate(); err != nil {
			return ListInvoicesQuery{}, err
		}
	}

	return ListInvoicesQuery{
		stage:   stage,
		owner:   owner,
		blocked: blocked,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrListInvoicesQueryIsNotConstructed)
}

type ListInvoicesQueryResponse struct {
	ID           kernel.UUID
	Number       string
	CustomerName string
	Destination  string
	Stage        invoice.Stage
	Owner        invoice.Owner
	Blocked      bool
	UpdatedAt    time.Time
}
