package http

import (
	"net/http"

	"doctrack/internal/core/application/usecases/commands"
	"doctrack/internal/core/application/usecases/queries"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateInvoice handles POST /api/v1/invoices.
func (s *Server) CreateInvoice(ctx echo.Context) error {
	var body servers.NewInvoice
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(id, body.Number)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.CreateInvoice.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.CreatedResource{Id: id.Bytes()})
}

// ListInvoices handles GET /api/v1/invoices.
func (s *Server) ListInvoices(ctx echo.Context, params servers.ListInvoicesParams) error {
	var stage *invoice.Stage
	if params.Stage != nil {
		parsed, err := invoice.ParseStage(*params.Stage)
		if err != nil {
			return s.fail(ctx, err)
		}
		stage = &parsed
	}

	var owner *invoice.Owner
	if params.Owner != nil {
		parsed, err := invoice.ParseOwner(*params.Owner)
		if err != nil {
			return s.fail(ctx, err)
		}
		owner = &parsed
	}

	query, err := queries.NewListInvoicesQuery(stage, owner, params.Blocked)
	if err != nil {
		return s.fail(ctx, err)
	}

	rows, err := s.handlers.ListInvoices.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.InvoiceSummary, len(rows))
	for i, row := range rows {
		response[i] = servers.InvoiceSummary{
			Id:           row.ID.Bytes(),
			Number:       row.Number,
			CustomerName: optionalString(row.CustomerName),
			Destination:  optionalString(row.Destination),
			Stage:        row.Stage.String(),
			Owner:        row.Owner.String(),
			Blocked:      row.Blocked,
			UpdatedAt:    row.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetInvoice handles GET /api/v1/invoices/{invoiceId}.
func (s *Server) GetInvoice(ctx echo.Context, invoiceId servers.InvoiceId) error {
	id, err := toKernelUUID(invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetInvoiceQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	inv, err := s.handlers.GetInvoice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, invoiceDetails(inv))
}

func invoiceDetails(inv *queries.GetInvoiceQueryResponse) servers.InvoiceDetails {
	details := servers.InvoiceDetails{
		Id:                 inv.ID.Bytes(),
		Number:             inv.Number,
		CustomerName:       optionalString(inv.CustomerName),
		Destination:        optionalString(inv.Destination),
		Value:              toMoney(inv.Value),
		Stage:              inv.Stage.String(),
		Owner:              inv.Owner.String(),
		Qc:                 inv.QC.String(),
		Bv:                 inv.BV.String(),
		Feri:               inv.Feri.String(),
		FeriReference:      optionalString(inv.FeriReference),
		Documents:          make(map[string]servers.DocumentId, len(inv.Documents)),
		TransportRequestId: optionalUUID(inv.TransportRequestID),
		LoadConfirmationId: optionalUUID(inv.LoadConfirmationID),
		ManifestId:         optionalUUID(inv.ManifestID),
		Blocked:            inv.Blocked,
		Checklist:          make([]servers.ChecklistItem, len(inv.Checklist)),
		History:            make([]servers.HistoryEntry, len(inv.History)),
		CreatedAt:          inv.CreatedAt,
		UpdatedAt:          inv.UpdatedAt,
	}

	if !inv.GrossWeight.IsZero() {
		details.GrossWeightKg = optionalString(inv.GrossWeight.Kilograms().String())
	}
	if inv.PackageCount > 0 {
		count := inv.PackageCount
		details.PackageCount = &count
	}
	if len(inv.BlockReasons) > 0 {
		reasons := append([]string(nil), inv.BlockReasons...)
		details.BlockReasons = &reasons
	}
	for docType, docID := range inv.Documents {
		details.Documents[docType.String()] = docID.Bytes()
	}
	for i, item := range inv.Checklist {
		unmet := item.Unmet
		if unmet == nil {
			unmet = []string{}
		}
		details.Checklist[i] = servers.ChecklistItem{
			Action: item.Action.String(),
			To:     item.To.String(),
			Ready:  item.Ready,
			Unmet:  unmet,
		}
	}
	for i, entry := range inv.History {
		details.History[i] = servers.HistoryEntry{
			From:   entry.From.String(),
			To:     entry.To.String(),
			Action: entry.Action.String(),
			Actor:  optionalString(entry.Actor),
			At:     entry.At,
		}
	}

	return details
}

// SetInspectionRequirements handles PUT /api/v1/invoices/{invoiceId}/requirements.
func (s *Server) SetInspectionRequirements(ctx echo.Context, invoiceId servers.InvoiceId) error {
	var body servers.InspectionRequirements
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSetRequirementsCommand(id, body.Qc, body.Bv, body.Feri)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.SetRequirements.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PerformInvoiceAction handles POST /api/v1/invoices/{invoiceId}/actions.
// A blocked transition answers 409 with the unmet conditions in the message.
func (s *Server) PerformInvoiceAction(ctx echo.Context, invoiceId servers.InvoiceId) error {
	var body servers.InvoiceActionRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	action, err := invoice.ParseAction(body.Action)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewPerformInvoiceActionCommand(id, action, deref(body.Actor))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.PerformInvoiceAction.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordInspection handles POST /api/v1/invoices/{invoiceId}/inspections.
func (s *Server) RecordInspection(ctx echo.Context, invoiceId servers.InvoiceId) error {
	var body servers.InspectionResultRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRecordInspectionCommand(id, body.Kind, body.Result)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.RecordInspection.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordFeri handles POST /api/v1/invoices/{invoiceId}/feri.
func (s *Server) RecordFeri(ctx echo.Context, invoiceId servers.InvoiceId) error {
	var body servers.FeriRequest
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	id, err := toKernelUUID(invoiceId)
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewRecordFeriCommand(id, body.Status, deref(body.Reference), deref(body.Actor))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.handlers.RecordFeri.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
