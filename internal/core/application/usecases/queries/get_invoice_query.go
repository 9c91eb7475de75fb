package queries

import (
	"errors"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/pkg/guard"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New("GetInvoiceQuery must be created via NewGetInvoiceQuery constructor")

// GetInvoiceQuery loads one invoice with the gate report for every action
// available from its stage.
type GetInvoiceQuery struct {
	invoiceID kernel.UUID
	guard     guard.ConstructorGuard
}

func NewGetInvoiceQuery(invoiceID kernel.UUID) (GetInvoiceQuery, error) {
	if err := invoiceID.Validate(); err != nil {
		return GetInvoiceQuery{}, err
	}
	return GetInvoiceQuery{invoiceID: invoiceID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetInvoiceQuery) InvoiceID() kernel.UUID { return q.invoiceID }

func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

type GetInvoiceQueryResponse struct {
	ID                 kernel.UUID
	Number             string
	CustomerName       string
	Destination        string
	Value              *kernel.Amount
	GrossWeight        kernel.Weight
	PackageCount       int
	Stage              invoice.Stage
	Owner              invoice.Owner
	QC                 invoice.InspectionStatus
	BV                 invoice.InspectionStatus
	Feri               invoice.FeriStatus
	FeriReference      string
	Documents          map[document.Type]kernel.UUID
	TransportRequestID *kernel.UUID
	LoadConfirmationID *kernel.UUID
	ManifestID         *kernel.UUID
	Blocked            bool
	BlockReasons       []string
	History            []invoice.HistoryEntry
	Checklist          []ChecklistItem
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ChecklistItem tells whether Action can be performed now and, if not,
// which conditions are still missing.
type ChecklistItem struct {
	Action invoice.Action
	To     invoice.Stage
	Ready  bool
	Unmet  []string
}
