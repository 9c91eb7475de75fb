package commands

import (
	"context"
	"time"
)

// RecordInspectionCommandHandler stores a QC or BV result on an invoice.
type RecordInspectionCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

func NewRecordInspectionCommandHandler(uowFactory InvoiceUoWFactory) RecordInspectionCommandHandler {
	return RecordInspectionCommandHandler{uowFactory: uowFactory}
}

func (h RecordInspectionCommandHandler) Handle(ctx context.Context, cmd RecordInspectionCommand) error {
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

	inv, err := invoiceRepo.Get(ctx, cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = inv.RecordInspection(cmd.Kind(), cmd.Result(), time.Now().UTC()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
