package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctrack/internal/core/domain/model/document"
	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/core/domain/model/kernel"
	"doctrack/internal/core/domain/services"
	"doctrack/internal/pkg/errs"
)

// AcknowledgeDocumentResult identifies the invoice the document populated.
type AcknowledgeDocumentResult struct {
	InvoiceID      kernel.UUID
	InvoiceCreated bool
}

// AcknowledgeDocumentCommandHandler runs the second phase of ingestion. The
// invoice is found by the invoice_number field; a commercial invoice for an
// unknown number opens a new invoice, any other document type requires the
// invoice to exist. Nothing is persisted when population fails, so the
// document stays PendingReview.
//
// Example:
//
//	handler := NewAcknowledgeDocumentCommandHandler(uowFactory)
//	cmd, _ := NewAcknowledgeDocumentCommand(documentID, "reviewer@example.com", map[string]string{"gross_weight": "1250 kg"})
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//		// no invoice for this document
//	case errors.Is(err, errs.ErrValueIsInvalid):
//		// a field could not be applied, review again
//	case err == nil:
//		log.Printf("attached to invoice %s", result.InvoiceID)
//	}
type AcknowledgeDocumentCommandHandler struct {
	uowFactory IngestionUoWFactory
	populator  services.DocumentPopulator
}

func NewAcknowledgeDocumentCommandHandler(uowFactory IngestionUoWFactory) AcknowledgeDocumentCommandHandler {
	return AcknowledgeDocumentCommandHandler{
		uowFactory: uowFactory,
		populator:  services.NewDocumentPopulator(),
	}
}

func (h AcknowledgeDocumentCommandHandler) Handle(ctx context.Context, cmd AcknowledgeDocumentCommand) (AcknowledgeDocumentResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	documentRepo := uow.DocumentRepository()
	invoiceRepo := uow.InvoiceRepository()

	doc, err := documentRepo.Get(ctx, cmd.DocumentID())
	if err != nil {
		return AcknowledgeDocumentResult{}, err
	}
	if doc.Status() != document.PendingReview {
		return AcknowledgeDocumentResult{}, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("document %s is %s, not pending review", doc.ID(), doc.Status()))
	}

	number, err := services.InvoiceNumber(doc.Extraction().Merge(cmd.Corrections()))
	if err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	now := time.Now().UTC()

	created := false
	inv, err := invoiceRepo.GetByNumber(ctx, number)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound) && doc.Type() == document.CommercialInvoice:
		inv, err = invoice.NewInvoice(kernel.NewUUID(), number, now)
		if err != nil {
			return AcknowledgeDocumentResult{}, err
		}
		created = true
	case err != nil:
		return AcknowledgeDocumentResult{}, err
	}

	if err = doc.Acknowledge(cmd.Reviewer(), inv.ID(), cmd.Corrections(), now); err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	if err = h.populator.Populate(doc, inv, cmd.Reviewer(), now); err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	if created {
		err = invoiceRepo.Add(ctx, inv)
	} else {
		err = invoiceRepo.Update(ctx, inv)
	}
	if err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	if err = documentRepo.Update(ctx, doc); err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcknowledgeDocumentResult{}, err
	}

	return AcknowledgeDocumentResult{InvoiceID: inv.ID(), InvoiceCreated: created}, nil
}
