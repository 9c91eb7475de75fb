package commands

import (
	"context"
	"errors"
	"time"

	"doctrack/internal/pkg/errs"
)

// PerformInvoiceActionCommandHandler applies a workflow action to an
// invoice. A blocked transition is still persisted so the invoice shows up
// as blocked with its reasons; the TransitionIsBlockedError is returned
// after the commit.
//
// Example:
//
//	handler := NewPerformInvoiceActionCommandHandler(uowFactory)
//	cmd, _ := NewPerformInvoiceActionCommand(invoiceID, invoice.SubmitToPlanning, "clerk@example.com")
//	err := handler.Handle(ctx, cmd)
//	var blocked *errs.TransitionIsBlockedError
//	switch {
//	case errors.As(err, &blocked):
//		log.Printf("still at %s: %v", blocked.Stage, blocked.Unmet)
//	case errors.Is(err, errs.ErrObjectNotFound):
//		// unknown invoice
//	}
type PerformInvoiceActionCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewPerformInvoiceActionCommandHandler creates a handler for workflow actions.
// Requires an InvoiceUoWFactory for loading and saving the invoice.
func NewPerformInvoiceActionCommandHandler(uowFactory InvoiceUoWFactory) PerformInvoiceActionCommandHandler {
	return PerformInvoiceActionCommandHandler{uowFactory: uowFactory}
}

func (h PerformInvoiceActionCommandHandler) Handle(ctx context.Context, cmd PerformInvoiceActionCommand) error {
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

	actionErr := inv.Perform(cmd.Action(), cmd.Actor(), time.Now().UTC())
	if actionErr != nil && !errors.Is(actionErr, errs.ErrTransitionIsBlocked) {
		return actionErr
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return actionErr
}
