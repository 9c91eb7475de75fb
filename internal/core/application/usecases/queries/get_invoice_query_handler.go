package queries

import (
	"context"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/ports"
)

// GetInvoiceQueryHandler reads through the invoice repository because the
// checklist is computed by the aggregate.
type GetInvoiceQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetInvoiceQueryHandler(uowFactory ports.UnitOfWorkFactory) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{uowFactory: uowFactory}
}

func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (*GetInvoiceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	inv, err := h.uowFactory.Create().InvoiceRepository().Get(ctx, query.InvoiceID())
	if err != nil {
		return nil, err
	}

	return newGetInvoiceQueryResponse(inv), nil
}

func newGetInvoiceQueryResponse(inv *invoice.Invoice) *GetInvoiceQueryResponse {
	reasons := make([]string, 0, len(inv.BlockReasons()))
	for _, c := range inv.BlockReasons() {
		reasons = append(reasons, c.Description())
	}

	checks := inv.Checklist()
	checklist := make([]ChecklistItem, 0, len(checks))
	for _, c := range checks {
		unmet := make([]string, 0, len(c.Unmet))
		for _, cond := range c.Unmet {
			unmet = append(unmet, cond.Description())
		}
		checklist = append(checklist, ChecklistItem{
			Action: c.Action,
			To:     c.To,
			Ready:  c.Ready(),
			Unmet:  unmet,
		})
	}

	return &GetInvoiceQueryResponse{
		ID:                 inv.ID(),
		Number:             inv.Number(),
		CustomerName:       inv.CustomerName(),
		Destination:        inv.Destination(),
		Value:              inv.Value(),
		GrossWeight:        inv.GrossWeight(),
		PackageCount:       inv.PackageCount(),
		Stage:              inv.Stage(),
		Owner:              inv.Owner(),
		QC:                 inv.QC(),
		BV:                 inv.BV(),
		Feri:               inv.Feri(),
		FeriReference:      inv.FeriReference(),
		Documents:          inv.Documents(),
		TransportRequestID: inv.TransportRequestID(),
		LoadConfirmationID: inv.LoadConfirmationID(),
		ManifestID:         inv.ManifestID(),
		Blocked:            inv.IsBlocked(),
		BlockReasons:       reasons,
		History:            inv.History(),
		Checklist:          checklist,
		CreatedAt:          inv.CreatedAt(),
		UpdatedAt:          inv.UpdatedAt(),
	}
}
