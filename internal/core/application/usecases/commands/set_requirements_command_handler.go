package commands

import (
	"context"
	"time"
)

// SetRequirementsCommandHandler switches the QC, BV and FERI requirements of
// an invoice. QC and BV are fixed once the invoice has left Loading.
//
// Example:
//
//	handler := NewSetRequirementsCommandHandler(uowFactory)
//	cmd, _ := NewSetRequirementsCommand(invoiceID, true, false, true)
//	if err := handler.Handle(ctx, cmd); errors.Is(err, errs.ErrValueIsInvalid) {
//		// requirement change not allowed in the current stage
//	}
type SetRequirementsCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

func NewSetRequirementsCommandHandler(uowFactory InvoiceUoWFactory) SetRequirementsCommandHandler {
	return SetRequirementsCommandHandler{uowFactory: uowFactory}
}

func (h SetRequirementsCommandHandler) Handle(ctx context.Context, cmd SetRequirementsCommand) error {
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

	if err = inv.SetRequirements(cmd.QC(), cmd.BV(), cmd.Feri(), time.Now().UTC()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
