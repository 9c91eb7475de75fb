package commands

import (
	"context"
	"errors"
	"time"

	"doctrack/internal/core/domain/model/invoice"
	"doctrack/internal/pkg/errs"
)

// CreateInvoiceCommandHandler registers a new invoice in the Planning stage.
// Invoice numbers are unique; a second invoice with the same number fails
// with errs.ErrObjectAlreadyExists.
//
// Example:
//
//	handler := NewCreateInvoiceCommandHandler(uowFactory)
//	cmd, err := NewCreateInvoiceCommand(kernel.NewUUID(), "INV-2025-0042")
//	if err != nil {
//		return err
//	}
//	switch err = handler.Handle(ctx, cmd); {
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//		// number already taken
//	case err != nil:
//		return err
//	}
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for invoice registration.
// Requires an InvoiceUoWFactory for the uniqueness check and insert.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()

	_, err := invoiceRepo.GetByNumber(ctx, cmd.Number())
	switch {
	case err == nil:
		return errs.NewObjectAlreadyExistsError("invoice number", cmd.Number())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	inv, err := invoice.NewInvoice(cmd.InvoiceID(), cmd.Number(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
